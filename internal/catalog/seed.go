package catalog

var (
	agreeScale = []string{"Strongly disagree", "Disagree", "Neutral", "Agree", "Strongly agree"}
)

// seedQuestions is the questionnaire in presentation order.
func seedQuestions() []Question {
	return []Question{
		// Psychometric: Interest Scale
		{
			ID:          "interest_1",
			Category:    CategoryPsychometric,
			Subcategory: "Interest Scale",
			Prompt:      "How excited do you feel when you hear about new VR technologies or applications?",
			Options:     []string{"Not at all excited", "Slightly excited", "Moderately excited", "Very excited", "Extremely excited"},
			Kind:        KindLikert,
		},
		{
			ID:          "interest_2",
			Category:    CategoryPsychometric,
			Subcategory: "Interest Scale",
			Prompt:      "How often do you find yourself thinking about 3D design or immersive experiences?",
			Options:     []string{"Never", "Rarely", "Sometimes", "Often", "Very often"},
			Kind:        KindLikert,
		},
		{
			ID:          "interest_3",
			Category:    CategoryPsychometric,
			Subcategory: "Interest Scale",
			Prompt:      "When you see a well-designed VR simulation, what is your first reaction?",
			Options:     []string{"I wonder how it was built", "I think about how to improve it", "I want to try creating something similar", "I analyze the user experience", "I imagine new applications"},
			Kind:        KindMultipleChoice,
		},

		// Psychometric: Personality Compatibility
		{
			ID:          "personality_1",
			Category:    CategoryPsychometric,
			Subcategory: "Personality Compatibility",
			Prompt:      "I enjoy exploring new ideas and unconventional approaches to problems.",
			Options:     agreeScale,
			Kind:        KindLikert,
		},
		{
			ID:          "personality_2",
			Category:    CategoryPsychometric,
			Subcategory: "Personality Compatibility",
			Prompt:      "I prefer working on projects that have clear structure and defined requirements.",
			Options:     agreeScale,
			Kind:        KindLikert,
		},
		{
			ID:          "personality_3",
			Category:    CategoryPsychometric,
			Subcategory: "Personality Compatibility",
			Prompt:      "When facing a complex technical challenge, I tend to:",
			Options:     []string{"Break it down into smaller, manageable parts", "Research similar problems and solutions", "Experiment with different approaches", "Seek advice from experienced people", "Take time to visualize the problem"},
			Kind:        KindMultipleChoice,
		},

		// Psychometric: Motivation Assessment
		{
			ID:          "motivation_1",
			Category:    CategoryPsychometric,
			Subcategory: "Motivation Assessment",
			Prompt:      "When working on a long-term project, I maintain my effort even when progress is slow.",
			Options:     agreeScale,
			Kind:        KindLikert,
		},
		{
			ID:          "motivation_2",
			Category:    CategoryPsychometric,
			Subcategory: "Motivation Assessment",
			Prompt:      "What motivates you most about the idea of VR development?",
			Options:     []string{"Creating immersive experiences", "Solving complex technical challenges", "Career growth opportunities", "Working with cutting-edge technology", "Making an impact in training/education"},
			Kind:        KindMultipleChoice,
		},

		// Technical: General Aptitude
		{
			ID:          "aptitude_1",
			Category:    CategoryTechnical,
			Subcategory: "General Aptitude",
			Prompt:      "If you rotate a cube 90 degrees clockwise around its vertical axis, which face that was originally on the right will now be:",
			Options:     []string{"On the front", "On the back", "On the left", "On the top", "On the bottom"},
			Kind:        KindAptitude,
		},
		{
			ID:          "aptitude_2",
			Category:    CategoryTechnical,
			Subcategory: "General Aptitude",
			Prompt:      "In a 3D coordinate system, if you move from point (2,3,1) by +3 units on the X-axis and -2 units on the Z-axis, your new position is:",
			Options:     []string{"(5,3,-1)", "(5,3,3)", "(2,6,1)", "(-1,3,1)", "(5,1,1)"},
			Kind:        KindAptitude,
		},

		// Technical: Prerequisite Knowledge
		{
			ID:          "prereq_1",
			Category:    CategoryTechnical,
			Subcategory: "Prerequisite Knowledge",
			Prompt:      "In programming, what is a 'variable'?",
			Options:     []string{"A fixed value that never changes", "A container for storing data values", "A type of function", "A debugging tool", "A graphics rendering method"},
			Kind:        KindMultipleChoice,
		},
		{
			ID:          "prereq_2",
			Category:    CategoryTechnical,
			Subcategory: "Prerequisite Knowledge",
			Prompt:      "What is the primary purpose of a 'for loop' in programming?",
			Options:     []string{"To create graphics", "To repeat a block of code multiple times", "To store data", "To handle user input", "To connect to databases"},
			Kind:        KindMultipleChoice,
		},
		{
			ID:          "prereq_3",
			Category:    CategoryTechnical,
			Subcategory: "Prerequisite Knowledge",
			Prompt:      "In 3D graphics, what does 'rendering' refer to?",
			Options:     []string{"Creating 3D models", "Converting 3D scenes into 2D images", "Programming game logic", "Designing user interfaces", "Recording audio"},
			Kind:        KindMultipleChoice,
		},

		// Technical: Domain-Specific Knowledge
		{
			ID:          "domain_1",
			Category:    CategoryTechnical,
			Subcategory: "Domain-Specific Knowledge",
			Prompt:      "In Unity, what is the primary purpose of a 'Collider' component?",
			Options:     []string{"To make objects visible", "To detect physical interactions between objects", "To apply materials to objects", "To animate objects", "To play sound effects"},
			Kind:        KindMultipleChoice,
		},
		{
			ID:          "domain_2",
			Category:    CategoryTechnical,
			Subcategory: "Domain-Specific Knowledge",
			Prompt:      "What is 'physics simulation' in the context of VR development?",
			Options:     []string{"Creating realistic lighting", "Simulating real-world physical behavior of objects", "Optimizing graphics performance", "Designing user interfaces", "Recording motion capture data"},
			Kind:        KindMultipleChoice,
		},

		// WISCAR
		{
			ID:          "wiscar_will_1",
			Category:    CategoryWiscar,
			Subcategory: "Will",
			Prompt:      "How likely are you to complete a challenging 6-month VR development project?",
			Options:     []string{"Very unlikely", "Unlikely", "Somewhat likely", "Likely", "Very likely"},
			Kind:        KindLikert,
		},
		{
			ID:          "wiscar_interest_1",
			Category:    CategoryWiscar,
			Subcategory: "Interest",
			Prompt:      "How much do you enjoy learning about new technologies and tools?",
			Options:     []string{"Not at all", "A little", "Moderately", "Quite a bit", "Extremely"},
			Kind:        KindLikert,
		},
		{
			ID:          "wiscar_skill_1",
			Category:    CategoryWiscar,
			Subcategory: "Skill",
			Prompt:      "How would you rate your current programming abilities?",
			Options:     []string{"No experience", "Beginner", "Intermediate", "Advanced", "Expert"},
			Kind:        KindLikert,
		},
		{
			ID:          "wiscar_cognitive_1",
			Category:    CategoryWiscar,
			Subcategory: "Cognitive Readiness",
			Prompt:      "When learning something new, I prefer to:",
			Options:     []string{"Follow step-by-step tutorials", "Experiment and figure things out", "Study theory first, then practice", "Learn from others' mistakes", "Combine multiple learning approaches"},
			Kind:        KindMultipleChoice,
		},
		{
			ID:          "wiscar_ability_1",
			Category:    CategoryWiscar,
			Subcategory: "Ability to Learn",
			Prompt:      "How quickly do you typically pick up new software tools?",
			Options:     []string{"Very slowly", "Slowly", "At average pace", "Quickly", "Very quickly"},
			Kind:        KindLikert,
		},
		{
			ID:          "wiscar_real_world_1",
			Category:    CategoryWiscar,
			Subcategory: "Real-World Alignment",
			Prompt:      "Which aspect of VR engineering appeals to you most?",
			Options:     []string{"Creating immersive experiences", "Solving technical challenges", "Working with teams", "Continuous learning", "Impacting various industries"},
			Kind:        KindMultipleChoice,
		},
	}
}

// seedAnswerKey holds the correct option index for each graded technical question.
func seedAnswerKey() map[string]int {
	return map[string]int{
		"aptitude_1": 1, // On the back
		"aptitude_2": 0, // (5,3,-1)
		"prereq_1":   1,
		"prereq_2":   1,
		"prereq_3":   1,
		"domain_1":   1,
		"domain_2":   1,
	}
}
