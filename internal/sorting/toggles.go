package sorting

// Toggles хранит направление сортировки для каждого поля.
// Каждое поле стартует по возрастанию; каждый вызов Next переключает направление.
//
// Не потокобезопасен: владелец (service.Service) сериализует доступ.
type Toggles struct {
	descending map[Field]bool
}

// NewToggles создаёт набор переключателей, все поля - по возрастанию.
func NewToggles() *Toggles {
	return &Toggles{descending: make(map[Field]bool, len(Fields))}
}

// Next возвращает направление для текущей активации поля и переключает его.
func (t *Toggles) Next(field Field) (ascending bool) {
	ascending = !t.descending[field]
	t.descending[field] = ascending
	return ascending
}

// Ascending сообщает, каким будет направление следующей активации поля.
func (t *Toggles) Ascending(field Field) bool {
	return !t.descending[field]
}
