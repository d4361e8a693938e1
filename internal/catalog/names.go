package catalog

// ChannelNames is the fixed channel catalog. Names are unique.
var ChannelNames = []string{
	"Tech Review Pro", "Gaming Universe", "Cooking Masters", "Travel Vlogs Daily",
	"Music Hits Channel", "Comedy Central Hub", "Science Explained", "DIY Projects",
	"Sports Highlights", "Movie Reviews", "Fashion Trends", "Fitness Journey",
	"News Today", "Art & Design", "Photography Tips", "Education Hub",
}

// TitleTemplates are title prefixes; a topic is appended after a space.
var TitleTemplates = []string{
	"Amazing Tutorial: How to Build",
	"Top 10 Things You Should Know About",
	"Ultimate Guide to",
	"Best Practices for",
	"Unboxing and Review:",
	"Let's Play:",
	"Daily Vlog:",
	"How I Made $10k with",
	"Beginner's Guide to",
	"Advanced Tips for",
	"I Tried 30 Days of",
	"The Truth About",
	"Reacting to",
	"Everything Wrong with",
	"Explained in 5 Minutes:",
	"Live Q&A:",
}

// VideoTopics are title suffixes.
var VideoTopics = []string{
	"React Development", "Gaming Setup", "Cooking Tips", "Travel Destinations",
	"Music Production", "Comedy Sketches", "Science Facts", "DIY Crafts",
	"Sports Analysis", "Movie Analysis", "Fashion Hauls", "Workout Routines",
	"Breaking News", "Digital Art", "Photography", "Online Courses",
}

var commenters = []string{
	"John Doe", "Jane Smith", "Tech Guru", "Random User", "Video Lover",
	"Content Creator", "Daily Viewer", "Subscriber 101", "Fan Account", "Pro Gamer",
}

var commentTexts = []string{
	"Great video! Really helpful content.",
	"This is exactly what I was looking for, thanks!",
	"Amazing explanation, keep up the good work!",
	"Can you make a video about this topic next?",
	"I've been watching your channel for years, love your content!",
	"This deserves more views!",
	"First! Great video as always.",
	"Thanks for sharing this, very informative.",
	"Subscribed! Looking forward to more content.",
	"This changed my perspective on this topic.",
}
