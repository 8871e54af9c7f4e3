package catalog

// Presentation is one named event whose media lives in two storage folders.
type Presentation struct {
	Key            string
	Name           string
	ImagesFolderID string
	VideosFolderID string
}

// Catalog is an ordered set of presentations. Aggregation iterates it in
// definition order, so order is part of the type's contract.
type Catalog []Presentation

// Default returns the compiled-in presentation catalog.
func Default() Catalog {
	return Catalog{
		{
			Key:            "rise-up",
			Name:           "Rise Up",
			ImagesFolderID: "1HPvJH-79p8XOj3zc2F9FcutP_iEcNDFK",
			VideosFolderID: "1tKVjoxm9l6TtOw1v3zTFdsGqiGmozadY",
		},
		{
			Key:            "filhos-do-sim",
			Name:           "Filhos do Sim",
			ImagesFolderID: "1wgwt_cci68O6eGnDe1NHa8vM_C_BQjMq",
			VideosFolderID: "1-gxWoDrsWRFrzVF4N9hUq6L9jZS6zXec",
		},
		{
			Key:            "jmj",
			Name:           "JMJ",
			ImagesFolderID: "1mMcHuqy4uwLZ73QOIWyYAxYuh2qovYvs",
			VideosFolderID: "1CpLZWLT8T3hC_QilD5uuhDpyr6RwWW_I",
		},
		{
			Key:            "uma-gota-no-oceano",
			Name:           "Uma Gota no Oceano",
			ImagesFolderID: "1Ig3_pnTluHe3n5E7it48mMaSq6nTjQfb",
			VideosFolderID: "1ENaHP-B7YbJaaxgvF3OuMqsflWr-g8-8",
		},
		{
			Key:            "jesus-cristo-superstar",
			Name:           "Jesus Cristo Superstar",
			ImagesFolderID: "1PnZIxVqfkRcbzs4PmtMoKopm1aXOWWFu",
			VideosFolderID: "1OoEbC0SLTa2Aiv6aOP8MAPaAE_iW-K_f",
		},
		{
			Key:            "nas-asas-do-sonho",
			Name:           "Nas Asas do Sonho",
			ImagesFolderID: "1835kSqPWviJzzjYZ9Fiytk9E5yIyPYYp",
			VideosFolderID: "16vxxX2zEbkZ7EQPxm4hZw4_0BUqsvMSu",
		},
		{
			Key:            "o-principe-e-a-lavadeira",
			Name:           "O Príncipe e a Lavadeira",
			ImagesFolderID: "1dhqOJRIuW4_kB7jnZBd95Q8YTS9VkBOb",
			VideosFolderID: "19zhOkcqDlEVCBWze2L3Epa1okdRxGD5R",
		},
		{
			Key:            "abertura-jogos-salesianos",
			Name:           "Abertura Jogos Salesianos",
			ImagesFolderID: "1awmmjkJZgbsviEXIxWezp_60Nz2c0Pxb",
			VideosFolderID: "1BWaoTPNBf7ARM3NVp5TWuPseArS3wIks",
		},
	}
}

// Lookup returns the presentation for the given key.
func (c Catalog) Lookup(key string) (Presentation, bool) {
	for _, p := range c {
		if p.Key == key {
			return p, true
		}
	}
	return Presentation{}, false
}

// Keys returns the presentation keys in catalog order.
func (c Catalog) Keys() []string {
	keys := make([]string, 0, len(c))
	for _, p := range c {
		keys = append(keys, p.Key)
	}
	return keys
}
