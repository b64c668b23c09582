package tabu

var (
	allAges   = []AgeGroup{AgeChild, AgeTeen, AgeAdult}
	olderAges = []AgeGroup{AgeTeen, AgeAdult}
	adultOnly = []AgeGroup{AgeAdult}
)

func card(id, word, category string, ages []AgeGroup, forbidden ...string) WordCard {
	return WordCard{ID: id, Word: word, Category: category, AgeGroups: ages, Forbidden: forbidden}
}

var deckEN = []WordCard{
	card("en-001", "Elephant", "animals", allAges, "trunk", "big", "grey", "Africa", "ears", "zoo", "ivory"),
	card("en-002", "Pizza", "food", allAges, "cheese", "Italy", "slice", "tomato", "dough", "oven", "pepperoni"),
	card("en-003", "Rainbow", "nature", allAges, "colors", "rain", "sky", "sun", "arc", "seven", "pot of gold"),
	card("en-004", "Birthday", "events", allAges, "cake", "candles", "party", "gift", "age", "celebrate", "balloon"),
	card("en-005", "Penguin", "animals", allAges, "bird", "ice", "black", "white", "Antarctica", "fly", "swim"),
	card("en-006", "Teacher", "people", allAges, "school", "class", "student", "lesson", "homework", "board", "learn"),
	card("en-007", "Bicycle", "transport", allAges, "wheels", "pedal", "ride", "helmet", "chain", "two", "bike"),
	card("en-008", "Ice cream", "food", allAges, "cold", "cone", "vanilla", "scoop", "summer", "dessert", "chocolate"),
	card("en-009", "Dinosaur", "animals", allAges, "extinct", "fossil", "big", "reptile", "Jurassic", "T-Rex", "bones"),
	card("en-010", "Moon", "space", allAges, "night", "sky", "full", "crater", "Earth", "astronaut", "shine"),
	card("en-011", "Smartphone", "technology", olderAges, "call", "app", "screen", "touch", "mobile", "battery", "camera"),
	card("en-012", "Volcano", "nature", olderAges, "lava", "erupt", "mountain", "ash", "hot", "magma", "crater"),
	card("en-013", "Library", "places", allAges, "books", "read", "quiet", "borrow", "shelf", "librarian", "card"),
	card("en-014", "Passport", "travel", olderAges, "travel", "country", "border", "photo", "visa", "airport", "stamp"),
	card("en-015", "Guitar", "music", allAges, "strings", "play", "rock", "acoustic", "chord", "instrument", "strum"),
	card("en-016", "Homework", "school", olderAges, "school", "teacher", "assignment", "study", "due", "evening", "grade"),
	card("en-017", "Social media", "technology", olderAges, "post", "like", "follow", "online", "share", "profile", "feed"),
	card("en-018", "Mortgage", "money", adultOnly, "house", "loan", "bank", "interest", "payment", "buy", "years"),
	card("en-019", "Coffee", "food", adultOnly, "drink", "morning", "bean", "caffeine", "cup", "espresso", "hot"),
	card("en-020", "Wedding", "events", olderAges, "bride", "groom", "marry", "ring", "ceremony", "dress", "vows"),
	card("en-021", "Tax return", "money", adultOnly, "government", "income", "form", "refund", "April", "file", "accountant"),
	card("en-022", "Job interview", "work", adultOnly, "hire", "questions", "resume", "company", "position", "nervous", "boss"),
	card("en-023", "Superhero", "fiction", allAges, "power", "cape", "save", "villain", "comic", "mask", "fly"),
	card("en-024", "Snowman", "nature", allAges, "snow", "winter", "carrot", "nose", "build", "cold", "scarf"),
	card("en-025", "Exam", "school", olderAges, "test", "study", "grade", "question", "pass", "fail", "school"),
	card("en-026", "Traffic jam", "transport", adultOnly, "cars", "road", "stuck", "rush hour", "slow", "honk", "commute"),
	card("en-027", "Pirate", "fiction", allAges, "ship", "treasure", "parrot", "sea", "eye patch", "captain", "hook"),
	card("en-028", "Vacation", "travel", allAges, "holiday", "trip", "beach", "relax", "hotel", "summer", "travel"),
	card("en-029", "Podcast", "technology", olderAges, "listen", "episode", "audio", "host", "show", "subscribe", "radio"),
	card("en-030", "Retirement", "work", adultOnly, "old", "work", "stop", "pension", "age", "career", "savings"),
}
