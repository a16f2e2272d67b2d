package service

// defaultTags is the fixed starter catalog inserted by GenerateDefaults.
// Insertion order is preserved.
var defaultTags = []struct {
	Name  string
	Color string
}{
	{"Работа", "#FF5733"},
	{"Личное", "#33C1FF"},
	{"Учёба", "#8E44AD"},
	{"Идеи", "#F1C40F"},
	{"Покупки", "#2ECC71"},
	{"Здоровье", "#E74C3C"},
	{"Финансы", "#16A085"},
	{"Путешествия", "#2980B9"},
	{"Семья", "#E67E22"},
	{"Проекты", "#9B59B6"},
	{"Книги", "#34495E"},
	{"Фильмы", "#D35400"},
	{"Музыка", "#1ABC9C"},
	{"Спорт", "#27AE60"},
	{"Рецепты", "#C0392B"},
	{"Встречи", "#7F8C8D"},
	{"Важное", "#FF0000"},
	{"Черновики", "#BDC3C7"},
	{"Дом", "#8D6E63"},
	{"Хобби", "#F39C12"},
	{"Разное", "#95A5A6"},
}
