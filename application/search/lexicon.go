package search

import "github.com/muhammadheryan/student-marketplace/constant"

// lexiconEntry ties a canonical term to the category it belongs to and the
// words shoppers use for it. Category entries have Term equal to Category.
type lexiconEntry struct {
	Term     string
	Category constant.Category
	Synonyms []string
}

// lexicon is shared by the term extractor and the category fallback so both
// recognise the same vocabulary.
var lexicon = []lexiconEntry{
	{
		Term:     "electronics",
		Category: constant.CategoryElectronics,
		Synonyms: []string{"electronics", "electronic", "device", "gadget", "tech", "macbook", "mac", "ipad", "iphone", "airpods"},
	},
	{
		Term:     "laptop",
		Category: constant.CategoryElectronics,
		Synonyms: []string{"laptop", "notebook", "computer", "macbook", "chromebook", "pc"},
	},
	{
		Term:     "phone",
		Category: constant.CategoryElectronics,
		Synonyms: []string{"phone", "smartphone", "iphone", "android", "cellphone"},
	},
	{
		Term:     "headphones",
		Category: constant.CategoryElectronics,
		Synonyms: []string{"headphones", "headphone", "earbuds", "headset", "airpods"},
	},
	{
		Term:     "monitor",
		Category: constant.CategoryElectronics,
		Synonyms: []string{"monitor", "display screen"},
	},
	{
		Term:     "calculator",
		Category: constant.CategoryElectronics,
		Synonyms: []string{"calculator", "ti-84", "graphing calculator"},
	},
	{
		Term:     "furniture",
		Category: constant.CategoryFurniture,
		Synonyms: []string{"furniture", "furnishing", "decor"},
	},
	{
		Term:     "desk",
		Category: constant.CategoryFurniture,
		Synonyms: []string{"desk", "table", "workstation"},
	},
	{
		Term:     "chair",
		Category: constant.CategoryFurniture,
		Synonyms: []string{"chair", "stool", "seat", "recliner"},
	},
	{
		Term:     "bed",
		Category: constant.CategoryFurniture,
		Synonyms: []string{"bed", "mattress", "futon", "bedframe"},
	},
	{
		Term:     "sofa",
		Category: constant.CategoryFurniture,
		Synonyms: []string{"sofa", "couch", "loveseat"},
	},
	{
		Term:     "lamp",
		Category: constant.CategoryFurniture,
		Synonyms: []string{"lamp", "desk lamp", "floor lamp"},
	},
	{
		Term:     "textbooks",
		Category: constant.CategoryTextbooks,
		Synonyms: []string{"textbooks", "textbook", "book", "novel", "course material", "study guide"},
	},
	{
		Term:     "clothing",
		Category: constant.CategoryClothing,
		Synonyms: []string{"clothing", "clothes", "apparel", "outfit"},
	},
	{
		Term:     "jacket",
		Category: constant.CategoryClothing,
		Synonyms: []string{"jacket", "coat", "hoodie", "sweater", "sweatshirt"},
	},
	{
		Term:     "shoes",
		Category: constant.CategoryClothing,
		Synonyms: []string{"shoes", "shoe", "sneakers", "boots", "sandals"},
	},
	{
		Term:     "shirt",
		Category: constant.CategoryClothing,
		Synonyms: []string{"shirt", "tshirt", "t-shirt", "blouse"},
	},
	{
		Term:     "pants",
		Category: constant.CategoryClothing,
		Synonyms: []string{"pants", "jeans", "trousers", "shorts", "leggings"},
	},
	{
		Term:     "miscellaneous",
		Category: constant.CategoryMiscellaneous,
		Synonyms: []string{"miscellaneous", "misc"},
	},
	{
		Term:     "guitar",
		Category: constant.CategoryMiscellaneous,
		Synonyms: []string{"guitar", "instrument", "ukulele", "keyboard piano"},
	},
	{
		Term:     "bike",
		Category: constant.CategoryMiscellaneous,
		Synonyms: []string{"bike", "bicycle", "scooter", "skateboard"},
	},
}

// strictCategoryWords maps the word after "show me" to a category. Only whole
// category words live here; product words such as "macbook" do not.
var strictCategoryWords = map[string]constant.Category{
	"electronics":   constant.CategoryElectronics,
	"electronic":    constant.CategoryElectronics,
	"furniture":     constant.CategoryFurniture,
	"textbooks":     constant.CategoryTextbooks,
	"textbook":      constant.CategoryTextbooks,
	"books":         constant.CategoryTextbooks,
	"book":          constant.CategoryTextbooks,
	"clothing":      constant.CategoryClothing,
	"clothes":       constant.CategoryClothing,
	"miscellaneous": constant.CategoryMiscellaneous,
	"misc":          constant.CategoryMiscellaneous,
}

// isCategory reports whether term is one of the five canonical categories.
func isCategory(term string) bool {
	for _, c := range constant.Categories {
		if string(c) == term {
			return true
		}
	}
	return false
}
