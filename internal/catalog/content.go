package catalog

// Track describes the career track the questionnaire assesses.
const Track = "VR Simulation Engineer"

// Overview is the intro blurb shown before the questionnaire.
const Overview = "VR Simulation Engineering involves designing, developing, and testing immersive virtual " +
	"environments for training, entertainment, education, and industrial applications. " +
	"Engineers in this field combine technical programming skills with creative design " +
	"to build experiences that feel real and engaging."

// Tagline is the one-line pitch under the intro banner.
const Tagline = "Discover if pursuing a career as a VR Simulation Engineer aligns with your " +
	"personality, skills, and motivation through our comprehensive assessment."

// Technologies lists the tools named on the intro screen.
var Technologies = []string{
	"Unity3D",
	"Unreal Engine",
	"C# Programming",
	"3D Modeling",
	"Physics Simulation",
	"VR Hardware",
}

// Highlight is a labelled line of supporting copy.
type Highlight struct {
	Label       string
	Description string
}

// KeySkills are the skills and traits linked to success in the field.
var KeySkills = []Highlight{
	{Label: "3D Programming", Description: "Unity, Unreal Engine, C#"},
	{Label: "Spatial Reasoning", Description: "3D visualization & design"},
	{Label: "Problem Solving", Description: "Systems thinking & debugging"},
	{Label: "Attention to Detail", Description: "Precision in VR interactions"},
	{Label: "Collaboration", Description: "Team-based development"},
	{Label: "Innovation", Description: "Creative solution design"},
}

// Discoveries summarise what the results cover.
var Discoveries = []Highlight{
	{Label: "Psychological Fit", Description: "Personality traits and motivational alignment"},
	{Label: "Technical Readiness", Description: "Current skill level and learning potential"},
	{Label: "Career Guidance", Description: "Personalized next steps and recommendations"},
}

// Careers are the job roles enabled by the track.
var Careers = []string{
	"VR Simulation Engineer",
	"VR Software Developer",
	"3D Environment Artist",
	"Interaction Designer for VR",
	"Game Developer (VR Focus)",
	"Training & Simulation Specialist",
}

// Resources are the learning areas suggested on the results screen.
var Resources = []Highlight{
	{Label: "Programming Fundamentals", Description: "C#, object-oriented programming, data structures"},
	{Label: "Game Engines", Description: "Unity3D, Unreal Engine, VR SDKs"},
	{Label: "3D Graphics", Description: "Linear algebra, 3D modeling, rendering"},
}
