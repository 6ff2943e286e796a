package model

// All lists every model in dependency order for AutoMigrate.
func All() []any {
	return []any{
		&UserModel{},
		&CategoryModel{},
		&TagModel{},
		&BookModel{},
		&BookTagModel{},
		&QuoteModel{},
	}
}
