package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics содержит метрики жизненного цикла заказов.
type OrderMetrics struct {
	// Счётчики операций над заказом
	ordersCreated  prometheus.Counter
	itemsAdded     prometheus.Counter
	itemsRejected  prometheus.Counter
	transitions    *prometheus.CounterVec
	rejected       *prometheus.CounterVec
	subscriberFail *prometheus.CounterVec

	// Время рассылки подписчикам
	dispatchDuration prometheus.Histogram

	// Количество заказов в каждом статусе
	ordersByStatus *prometheus.GaugeVec
}

// NewOrderMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer регистрирует метрики в переданном registerer.
// Повторная регистрация переиспользует уже существующие коллекторы.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orderflow_orders_created_total",
			Help: "Total number of orders created",
		}),
		itemsAdded: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orderflow_order_items_added_total",
			Help: "Total number of line items added to orders",
		}),
		itemsRejected: registerCounter(registerer, prometheus.CounterOpts{
			Name: "orderflow_order_items_rejected_total",
			Help: "Total number of line items rejected by validation",
		}),
		transitions: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orderflow_transitions_total",
			Help: "Total number of accepted status transitions",
		}, []string{"from", "to"}),
		rejected: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orderflow_transitions_rejected_total",
			Help: "Total number of rejected status transitions",
		}, []string{"from", "to"}),
		subscriberFail: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "orderflow_subscriber_failures_total",
			Help: "Total number of subscriber failures during dispatch",
		}, []string{"subscriber"}),
		dispatchDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "orderflow_dispatch_duration_seconds",
			Help:    "Duration of subscriber dispatch per transition in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		}),
		ordersByStatus: registerGaugeVec(registerer, prometheus.GaugeOpts{
			Name: "orderflow_orders_by_status",
			Help: "Number of orders currently in each status",
		}, []string{"status"}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGaugeVec(registerer prometheus.Registerer, opts prometheus.GaugeOpts, labels []string) *prometheus.GaugeVec {
	collector := prometheus.NewGaugeVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.GaugeVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// RecordOrderCreated учитывает новый заказ в статусе status.
func (m *OrderMetrics) RecordOrderCreated(status string) {
	m.ordersCreated.Inc()
	m.ordersByStatus.WithLabelValues(status).Inc()
}

// RecordItemAdded увеличивает счётчик добавленных позиций.
func (m *OrderMetrics) RecordItemAdded() {
	m.itemsAdded.Inc()
}

// RecordItemRejected увеличивает счётчик отклонённых позиций.
func (m *OrderMetrics) RecordItemRejected() {
	m.itemsRejected.Inc()
}

// RecordTransition учитывает принятый переход и перекладывает заказ между статусами.
func (m *OrderMetrics) RecordTransition(from, to string) {
	m.transitions.WithLabelValues(from, to).Inc()
	m.ordersByStatus.WithLabelValues(from).Dec()
	m.ordersByStatus.WithLabelValues(to).Inc()
}

// RecordTransitionRejected учитывает отклонённую пару статусов.
func (m *OrderMetrics) RecordTransitionRejected(from, to string) {
	m.rejected.WithLabelValues(from, to).Inc()
}

// RecordSubscriberFailure учитывает упавшего подписчика.
func (m *OrderMetrics) RecordSubscriberFailure(subscriber string) {
	m.subscriberFail.WithLabelValues(subscriber).Inc()
}

// RecordDispatchDuration записывает время рассылки.
func (m *OrderMetrics) RecordDispatchDuration(duration time.Duration) {
	m.dispatchDuration.Observe(duration.Seconds())
}
