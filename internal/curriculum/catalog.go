package curriculum

// Static Pathways curriculum. Projects are served required-first, electives
// after, and never resorted alphabetically.

var pathways = []string{
	"Dynamic Leadership",
	"Effective Coaching",
	"Engaging Humor",
	"Innovative Planning",
	"Leadership Development",
	"Motivational Strategies",
	"Persuasive Influence",
	"Presentation Mastery",
	"Strategic Relationships",
	"Team Collaboration",
	"Visionary Communication",
}

var levels = []string{"Level 1", "Level 2", "Level 3", "Level 4", "Level 5"}

var level1Projects = []string{
	"Ice Breaker",
	"Writing a Speech with Purpose",
	"Introduction to Vocal Variety and Body Language",
	"Evaluation and Feedback",
}

var level2Common = []string{"Introduction to Toastmasters Mentoring"}

var level3Electives = []string{
	"Active Listening",
	"Connect with Storytelling",
	"Connect with Your Audience",
	"Create a Podcast",
	"Focus on the Positive",
	"Inspire Your Audience",
	"Interpersonal Communication",
	"Know Your Sense of Humor",
	"Make Connections Through Networking",
	"Prepare for an Interview",
	"Understanding Vocal Variety",
	"Using Descriptive Language",
	"Using Presentation Software",
}

var level4Electives = []string{
	"Building a Social Media Presence",
	"Create a Podcast",
	"Manage Online Meetings",
	"Manage Projects Successfully",
	"Managing a Difficult Audience",
	"Public Relations Strategies",
	"Question-and-Answer Session",
	"Write a Compelling Blog",
}

var level5Electives = []string{
	"Ethical Leadership",
	"High Performance Leadership",
	"Leading in Your Volunteer Organization",
	"Lessons Learned",
	"Moderate a Panel Discussion",
	"Prepare to Speak Professionally",
}

// Required projects per pathway and level. Level 1 is global and electives
// are appended separately.
var pathRequirements = map[string]map[string][]string{
	"Dynamic Leadership": {
		"Level 2": {"Understanding Your Leadership Style", "Understanding Your Communication Style"},
		"Level 3": {"Negotiate the Best Outcome"},
		"Level 4": {"Manage Change"},
		"Level 5": {"Lead in Any Situation"},
	},
	"Effective Coaching": {
		"Level 2": {"Understanding Your Leadership Style", "Understanding Your Communication Style"},
		"Level 3": {"Reaching Consensus"},
		"Level 4": {"Improvement Through Positive Coaching"},
		"Level 5": {"High Performance Leadership"},
	},
	"Engaging Humor": {
		"Level 2": {"Know Your Sense of Humor", "Connect with Your Audience"},
		"Level 3": {"Engage Your Audience with Humor"},
		"Level 4": {"The Power of Humor in an Impromptu Speech"},
		"Level 5": {"Deliver Your Message with Humor"},
	},
	"Innovative Planning": {
		"Level 2": {"Understanding Your Leadership Style", "Connect with Your Audience"},
		"Level 3": {"Present a Proposal"},
		"Level 4": {"Manage Projects Successfully"},
		"Level 5": {"High Performance Leadership"},
	},
	"Leadership Development": {
		"Level 2": {"Understanding Your Leadership Style", "Managing Time"},
		"Level 3": {"Planning and Implementing"},
		"Level 4": {"Leading Your Team"},
		"Level 5": {"Manage Successful Events"},
	},
	"Motivational Strategies": {
		"Level 2": {"Understanding Your Communication Style", "Active Listening"},
		"Level 3": {"Understanding Emotional Intelligence"},
		"Level 4": {"Motivate Others"},
		"Level 5": {"Team Building"},
	},
	"Persuasive Influence": {
		"Level 2": {"Understanding Your Leadership Style", "Active Listening"},
		"Level 3": {"Understanding Conflict Resolution"},
		"Level 4": {"Leading in Difficult Situations"},
		"Level 5": {"High Performance Leadership"},
	},
	"Presentation Mastery": {
		"Level 2": {"Understanding Your Communication Style", "Effective Body Language"},
		"Level 3": {"Persuasive Speaking"},
		"Level 4": {"Managing a Difficult Audience"},
		"Level 5": {"Prepare to Speak Professionally"},
	},
	"Strategic Relationships": {
		"Level 2": {"Understanding Your Leadership Style", "Cross-Cultural Understanding"},
		"Level 3": {"Make Connections Through Networking"},
		"Level 4": {"Public Relations Strategies"},
		"Level 5": {"Leading in Your Volunteer Organization"},
	},
	"Team Collaboration": {
		"Level 2": {"Understanding Your Leadership Style", "Active Listening"},
		"Level 3": {"Successful Collaboration"},
		"Level 4": {"Motivate Others"},
		"Level 5": {"Lead in Any Situation"},
	},
	"Visionary Communication": {
		"Level 2": {"Understanding Your Leadership Style", "Understanding Your Communication Style"},
		"Level 3": {"Develop a Communication Plan"},
		"Level 4": {"Communicate Change"},
		"Level 5": {"Develop Your Vision"},
	},
}

func Pathways() []string {
	out := make([]string, len(pathways))
	copy(out, pathways)
	return out
}

func Levels() []string {
	out := make([]string, len(levels))
	copy(out, levels)
	return out
}

// ProjectsFor lists the selectable projects for a pathway/level pair.
// Level 1 is the same for every pathway. For other levels the path-specific
// required projects come first, then the Level 2 common project or the
// level's electives, with electives already required for the path removed.
func ProjectsFor(pathway, level string) []string {
	if pathway == "" || level == "" {
		return nil
	}

	if level == "Level 1" {
		out := make([]string, len(level1Projects))
		copy(out, level1Projects)
		return out
	}

	var projects []string
	if byLevel, ok := pathRequirements[pathway]; ok {
		projects = append(projects, byLevel[level]...)
	}

	switch level {
	case "Level 2":
		projects = append(projects, level2Common...)
	case "Level 3":
		projects = appendMissing(projects, level3Electives)
	case "Level 4":
		projects = appendMissing(projects, level4Electives)
	case "Level 5":
		projects = appendMissing(projects, level5Electives)
	}

	return projects
}

func appendMissing(projects, electives []string) []string {
	for _, e := range electives {
		if !contains(projects, e) {
			projects = append(projects, e)
		}
	}
	return projects
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// Valid reports whether a booked speech references a known pathway, level and
// project combination.
func Valid(pathway, level, project string) bool {
	for _, p := range ProjectsFor(pathway, level) {
		if p == project {
			return true
		}
	}
	return false
}
