package domain

// Transition - одна допустимая пара статусов.
type Transition struct {
	From OrderStatus
	To   OrderStatus
}

// TransitionRules хранит таблицу допустимых переходов как данные.
// Нулевое значение не разрешает ни одного перехода.
type TransitionRules struct {
	allowed map[OrderStatus]map[OrderStatus]struct{}
}

// NewTransitionRules собирает таблицу из списка пар.
func NewTransitionRules(pairs ...Transition) TransitionRules {
	allowed := make(map[OrderStatus]map[OrderStatus]struct{}, len(pairs))
	for _, p := range pairs {
		if allowed[p.From] == nil {
			allowed[p.From] = make(map[OrderStatus]struct{})
		}
		allowed[p.From][p.To] = struct{}{}
	}
	return TransitionRules{allowed: allowed}
}

// DefaultTransitions - линейный жизненный цикл без пропусков и откатов:
// Created → Paid → Packed → Shipped → Delivered. В Cancelled перехода нет.
func DefaultTransitions() TransitionRules {
	return NewTransitionRules(
		Transition{From: OrderStatusCreated, To: OrderStatusPaid},
		Transition{From: OrderStatusPaid, To: OrderStatusPacked},
		Transition{From: OrderStatusPacked, To: OrderStatusShipped},
		Transition{From: OrderStatusShipped, To: OrderStatusDelivered},
	)
}

// WithCancellation возвращает копию таблицы, где из каждого нетерминального
// статуса разрешён переход в Cancelled.
func (r TransitionRules) WithCancellation() TransitionRules {
	pairs := r.Pairs()
	for _, status := range AllStatuses() {
		if status.IsTerminal() {
			continue
		}
		pairs = append(pairs, Transition{From: status, To: OrderStatusCancelled})
	}
	return NewTransitionRules(pairs...)
}

// Allows проверяет, входит ли пара (from, to) в таблицу.
func (r TransitionRules) Allows(from, to OrderStatus) bool {
	targets, ok := r.allowed[from]
	if !ok {
		return false
	}
	_, ok = targets[to]
	return ok
}

// Next возвращает допустимые целевые статусы в порядке жизненного цикла.
func (r TransitionRules) Next(from OrderStatus) []OrderStatus {
	var result []OrderStatus
	for _, to := range AllStatuses() {
		if r.Allows(from, to) {
			result = append(result, to)
		}
	}
	return result
}

// Pairs перечисляет все допустимые пары в детерминированном порядке.
func (r TransitionRules) Pairs() []Transition {
	var result []Transition
	for _, from := range AllStatuses() {
		for _, to := range r.Next(from) {
			result = append(result, Transition{From: from, To: to})
		}
	}
	return result
}
