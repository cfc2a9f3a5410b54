package entity

// Category представляет категорию вопросов (Science, Art, ...)
type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Type string `gorm:"column:type;type:text;not null;uniqueIndex" json:"type"`
}

// TableName определяет имя таблицы для GORM
func (Category) TableName() string {
	return "categories"
}

// CategoryTypes возвращает названия категорий в исходном порядке
func CategoryTypes(categories []Category) []string {
	types := make([]string, len(categories))
	for i, c := range categories {
		types[i] = c.Type
	}
	return types
}
