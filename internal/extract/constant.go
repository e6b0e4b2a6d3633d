package extract

// Log prefixes
const (
	LogPrefixExtract = "internal.extract.Extract"
)

// Fast path is used for queries shorter than this many tokens.
const FastPathTokenLimit = 15

// Extraction prompt
const (
	PromptExtractSystem = `You are a shopping query parser. Extract every product the user wants to buy from the query below.

Query: "%s"
Previously shown products: %s

When the query only refines the previous results (a price cap, a color, "cheaper ones"), reuse the previous products' category as the product type.

Return ONLY a JSON object with this format:
{
  "products": [
    {
      "product_type": "the product category",
      "key_attributes": ["descriptive attributes"],
      "color": "color if mentioned, empty if not",
      "brand": "brand if mentioned, empty if not",
      "price_range": {"min": null, "max": null},
      "search_keywords": ["keywords for a retail search"],
      "must_have_features": ["hard requirements"]
    }
  ],
  "shared_context": {
    "occasion": "event/occasion if mentioned",
    "urgency": "timeframe if mentioned",
    "location": "usage location if mentioned",
    "overall_budget": null
  }
}`
)

// productNouns are single-token product categories recognized by the fast path.
var productNouns = map[string]struct{}{
	"shoe": {}, "shoes": {}, "shirt": {}, "shirts": {}, "pants": {}, "jeans": {},
	"dress": {}, "dresses": {}, "jacket": {}, "jackets": {}, "coat": {}, "coats": {},
	"hat": {}, "hats": {}, "gloves": {}, "socks": {}, "suit": {}, "tie": {},
	"phone": {}, "phones": {}, "laptop": {}, "laptops": {}, "computer": {}, "computers": {},
	"tv": {}, "television": {}, "monitor": {}, "monitors": {}, "tablet": {}, "tablets": {},
	"headphone": {}, "headphones": {}, "earbuds": {}, "speaker": {}, "speakers": {},
	"camera": {}, "cameras": {}, "keyboard": {}, "mouse": {}, "charger": {}, "console": {},
	"watch": {}, "watches": {}, "jewelry": {}, "ring": {}, "rings": {},
	"necklace": {}, "necklaces": {}, "bracelet": {}, "bracelets": {},
	"book": {}, "books": {}, "game": {}, "games": {}, "toy": {}, "toys": {},
	"puzzle": {}, "puzzles": {}, "backpack": {}, "bag": {}, "bags": {}, "wallet": {},
	"chair": {}, "chairs": {}, "table": {}, "tables": {}, "desk": {}, "desks": {},
	"sofa": {}, "sofas": {}, "couch": {}, "lamp": {}, "lamps": {}, "mattress": {},
	"mixer": {}, "mixers": {}, "blender": {}, "blenders": {}, "toaster": {}, "toasters": {},
	"microwave": {}, "microwaves": {}, "refrigerator": {}, "fridge": {}, "freezer": {},
	"kettle": {}, "grill": {}, "cookware": {}, "knife": {}, "knives": {},
	"perfume": {}, "cologne": {}, "makeup": {}, "skincare": {}, "shampoo": {},
	"drill": {}, "drills": {}, "saw": {}, "saws": {}, "screwdriver": {}, "hammer": {},
	"bike": {}, "bikes": {}, "bicycle": {}, "bicycles": {}, "scooter": {},
	"tent": {}, "grills": {}, "umbrella": {}, "cooler": {}, "treadmill": {},
}

// productBigrams are two-token product categories checked before single nouns.
var productBigrams = map[string]struct{}{
	"coffee maker": {}, "coffee makers": {}, "coffee machine": {},
	"air fryer": {}, "air fryers": {}, "air conditioner": {},
	"vacuum cleaner": {}, "pressure cooker": {}, "slow cooker": {},
	"gaming laptop": {}, "gaming chair": {}, "gaming console": {},
	"running shoes": {}, "hiking boots": {}, "tennis racket": {},
	"water bottle": {}, "yoga mat": {}, "smart watch": {},
	"wireless earbuds": {}, "bluetooth speaker": {}, "phone case": {},
	"office chair": {}, "standing desk": {}, "bed frame": {},
	"washing machine": {}, "food processor": {}, "rice cooker": {},
}

// colorTerms recognized by the fast path.
var colorTerms = map[string]struct{}{
	"red": {}, "blue": {}, "green": {}, "yellow": {}, "black": {}, "white": {},
	"purple": {}, "pink": {}, "orange": {}, "brown": {}, "gray": {}, "grey": {},
	"silver": {}, "gold": {}, "beige": {}, "navy": {},
}

// adjectiveTerms are descriptors attached to the nearest product.
var adjectiveTerms = map[string]struct{}{
	"cheap": {}, "affordable": {}, "budget": {}, "premium": {}, "luxury": {},
	"wireless": {}, "bluetooth": {}, "portable": {}, "compact": {}, "large": {},
	"small": {}, "big": {}, "comfortable": {}, "durable": {}, "lightweight": {},
	"waterproof": {}, "professional": {}, "gaming": {}, "smart": {}, "digital": {},
	"electric": {}, "manual": {}, "automatic": {}, "quiet": {}, "fast": {},
	"powerful": {}, "ergonomic": {}, "stylish": {}, "modern": {}, "vintage": {},
	"new": {}, "used": {}, "refurbished": {}, "good": {}, "nice": {}, "best": {},
}

// brandTerms recognized by the fast path.
var brandTerms = map[string]struct{}{
	"nike": {}, "adidas": {}, "puma": {}, "reebok": {}, "newbalance": {},
	"sony": {}, "samsung": {}, "apple": {}, "lg": {}, "bose": {}, "jbl": {},
	"dell": {}, "hp": {}, "lenovo": {}, "asus": {}, "acer": {}, "microsoft": {},
	"keurig": {}, "ninja": {}, "cuisinart": {}, "kitchenaid": {}, "dyson": {},
	"levis": {}, "gap": {}, "zara": {}, "ikea": {}, "logitech": {}, "anker": {},
}

// stopWords removed from generic keyword fallback.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "i": {}, "me": {}, "my": {}, "we": {},
	"for": {}, "to": {}, "of": {}, "in": {}, "on": {}, "at": {}, "and": {},
	"or": {}, "with": {}, "want": {}, "need": {}, "find": {}, "show": {},
	"get": {}, "buy": {}, "looking": {}, "please": {}, "some": {}, "any": {},
	"that": {}, "this": {}, "it": {}, "is": {}, "are": {}, "can": {}, "you": {},
}

// followUpMarkers trigger previous-product context injection.
var followUpMarkers = map[string]struct{}{
	"more": {}, "again": {}, "similar": {}, "another": {},
	"also": {}, "those": {}, "these": {},
}

type taggedKeywords struct {
	tag      string
	keywords []string
}

// occasionKeywords maps trigger words to an occasion tag, in match priority order.
var occasionKeywords = []taggedKeywords{
	{"wedding", []string{"wedding", "ceremony", "reception"}},
	{"party", []string{"party", "celebration", "birthday"}},
	{"gift", []string{"gift", "present", "anniversary"}},
	{"work", []string{"work", "office", "business", "professional"}},
	{"casual", []string{"casual", "everyday", "daily"}},
	{"formal", []string{"formal", "gala", "black tie"}},
}

// locationKeywords maps trigger words to a location tag, in match priority order.
var locationKeywords = []taggedKeywords{
	{"home", []string{"home", "house", "apartment"}},
	{"office", []string{"office", "workplace"}},
	{"outdoor", []string{"outdoor", "outside", "garden", "camping"}},
	{"gym", []string{"gym", "fitness", "workout"}},
}
