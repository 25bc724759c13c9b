package analysis

// categoryOrder fixes the taxonomy iteration order. Scoring walks this slice
// rather than a map so equal scores resolve to the same ranking on every
// run. The first entry doubles as the fallback category.
var categoryOrder = []string{
	"Educational",
	"Entertainment",
	"News",
	"Tutorial",
	"Review",
	"How-to",
	"Vlog",
	"Comedy",
	"Technology",
	"Business",
	"Lifestyle",
	"Gaming",
	"Sports",
	"Music",
	"Art",
	"Science",
	"Politics",
	"Health",
	"Food",
	"Travel",
}

// categoryKeywords associates each taxonomy category with its indicator
// keywords. Multi-word keywords match as substrings; single words match on
// word boundaries.
var categoryKeywords = map[string][]string{
	"Educational":   {"learn", "explain", "teach", "course", "lesson", "education", "knowledge", "study", "understand", "concepts", "principles"},
	"Entertainment": {"fun", "entertainment", "enjoy", "watch", "show", "amusing", "entertaining", "funny", "humor"},
	"News":          {"news", "report", "breaking", "happening", "current", "events", "update", "latest", "announcement"},
	"Tutorial":      {"tutorial", "guide", "how to", "step", "instruction", "demo", "walkthrough", "learn how"},
	"Review":        {"review", "opinion", "rating", "recommend", "verdict", "thoughts", "critique", "assessment"},
	"How-to":        {"how to", "guide", "process", "method", "technique", "procedure", "steps", "build", "create"},
	"Vlog":          {"vlog", "vlogging", "day in my life", "personal", "journal", "daily", "follow along"},
	"Comedy":        {"funny", "laugh", "comic", "joke", "humor", "hilarious", "comedy", "comedic"},
	"Technology":    {"tech", "software", "hardware", "code", "coding", "programming", "app", "digital", "algorithm", "system"},
	"Business":      {"business", "company", "corporate", "money", "finance", "marketing", "sales", "enterprise", "startup", "strategy"},
	"Lifestyle":     {"lifestyle", "routine", "wellness", "habit", "productivity", "self-improvement", "daily", "living"},
	"Gaming":        {"game", "gaming", "video game", "console", "esports", "stream", "gameplay", "gamer", "play"},
	"Sports":        {"sport", "athletic", "team", "competition", "athlete", "championship", "match", "tournament", "game"},
	"Music":         {"music", "song", "track", "musical", "instrument", "concert", "rhythm", "melody", "artist"},
	"Art":           {"art", "paint", "draw", "creative", "design", "aesthetic", "artist", "visual", "creative process"},
	"Science":       {"science", "scientific", "research", "experiment", "study", "data", "discovery", "theory", "hypothesis"},
	"Politics":      {"politics", "political", "election", "government", "policy", "parliament", "vote", "congress"},
	"Health":        {"health", "medical", "doctor", "disease", "fitness", "exercise", "wellness", "nutrition", "healthcare"},
	"Food":          {"food", "recipe", "cook", "cooking", "cuisine", "culinary", "eat", "restaurant", "dish"},
	"Travel":        {"travel", "journey", "destination", "trip", "explore", "adventure", "tourism", "visit", "location"},
}

// weakCategories need at least three matched keywords before they are scored
// at all, and remain eligible for suppression and the low-score post-filter.
var weakCategories = map[string]bool{
	"Music":         true,
	"Entertainment": true,
	"Vlog":          true,
	"Comedy":        true,
}

// techSuppressed lists the categories whose scores shrink when the primary
// research domain is technical. Broader than the business list: technical
// content also crowds out Art, Food, and Travel false positives.
var techSuppressed = []string{"Music", "Entertainment", "Comedy", "Vlog", "Art", "Food", "Travel"}

// businessSuppressed lists the categories whose scores shrink when the
// primary research domain is Business & Strategy.
var businessSuppressed = []string{"Music", "Entertainment", "Comedy", "Vlog"}

// techDomains are the research domains treated as technical for the
// contextual category adjustment.
var techDomains = map[string]bool{
	"Machine Learning":     true,
	"Data Science":         true,
	"Software Engineering": true,
	"Web Technology":       true,
}

const businessDomain = "Business & Strategy"

// Topic indicator buckets. Two or more distinct hits across the extracted
// topics add a flat boost to the corresponding category.
var (
	techIndicators     = []string{"ai", "llm", "model", "algorithm", "code", "software", "data", "system", "optimization"}
	scienceIndicators  = []string{"research", "study", "experiment", "analysis", "theory", "hypothesis"}
	businessIndicators = []string{"business", "market", "strategy", "product", "company"}
)
