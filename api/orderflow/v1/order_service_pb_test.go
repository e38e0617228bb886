package orderflowv1

import (
	"reflect"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
)

func sampleOrder() *Order {
	return &Order{
		Id:           "O-1",
		CustomerId:   "C001",
		CustomerName: "Alice",
		Status:       "paid",
		Items: []*OrderItem{
			{ProductId: "P001", ProductName: "Laptop", Quantity: 2, UnitPrice: "999.99", LineTotal: "1999.98"},
		},
		Total: "1999.98",
		History: []*StatusChange{
			{From: "created", To: "paid", At: "2026-01-02T03:04:05Z"},
		},
		CreatedAt: "2026-01-02T03:00:00Z",
	}
}

func TestGeneratedMessageHelpers(t *testing.T) {
	messages := []any{
		sampleOrder(),
		&OrderItem{ProductId: "P001", ProductName: "Laptop", Quantity: 1, UnitPrice: "999.99", LineTotal: "999.99"},
		&StatusChange{From: "created", To: "paid", At: "2026-01-02T03:04:05Z"},
		&Transition{From: "created", To: "paid"},
		&CreateOrderRequest{OrderId: "O-1", CustomerId: "C001"},
		&CreateOrderResponse{Order: sampleOrder()},
		&AddItemRequest{OrderId: "O-1", ProductId: "P001", Quantity: 1},
		&AddItemResponse{Order: sampleOrder()},
		&RequestTransitionRequest{OrderId: "O-1", Target: "paid"},
		&RequestTransitionResponse{Accepted: true, PreviousStatus: "created", Order: sampleOrder(), SubscriberError: "boom"},
		&GetOrderRequest{OrderId: "O-1"},
		&GetOrderResponse{Order: sampleOrder()},
		&ListOrdersRequest{},
		&ListOrdersResponse{Orders: []*Order{sampleOrder()}},
		&GetReportRequest{OrderId: "O-1"},
		&GetReportResponse{Report: "Order O-1"},
		&ListTransitionsRequest{From: "created"},
		&ListTransitionsResponse{Transitions: []*Transition{{From: "created", To: "paid"}}},
	}

	for _, msg := range messages {
		t.Run(reflect.TypeOf(msg).Elem().Name(), func(t *testing.T) {
			exerciseGeneratedMessage(t, msg)
		})
	}
}

func TestWireRoundTrip(t *testing.T) {
	in := &RequestTransitionResponse{
		Accepted:        true,
		PreviousStatus:  "created",
		Order:           sampleOrder(),
		SubscriberError: "audit: unavailable",
	}

	data, err := proto.Marshal(in)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var out RequestTransitionResponse
	if err := proto.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !proto.Equal(in, &out) {
		t.Fatalf("round trip mismatch: got %v want %v", &out, in)
	}
	if got := out.GetOrder().GetItems()[0].GetQuantity(); got != 2 {
		t.Fatalf("unexpected quantity %d", got)
	}
	if got := out.GetOrder().GetHistory()[0].GetTo(); got != "paid" {
		t.Fatalf("unexpected history target %q", got)
	}
}

func TestFileDescriptorMetadata(t *testing.T) {
	fd := File_orderflow_v1_order_service_proto
	if fd.Path() != "orderflow/v1/order_service.proto" {
		t.Fatalf("unexpected descriptor path %q", fd.Path())
	}
	if fd.Package() != "orderflow.v1" {
		t.Fatalf("unexpected package %q", fd.Package())
	}
	if got := fd.Messages().Len(); got != 18 {
		t.Fatalf("expected 18 message descriptors, got %d", got)
	}
	if fd.Services().Len() != 1 {
		t.Fatalf("expected one service descriptor, got %d", fd.Services().Len())
	}
	svc := fd.Services().Get(0)
	if svc.Name() != "OrderService" {
		t.Fatalf("unexpected service name %q", svc.Name())
	}
	if got := svc.Methods().Len(); got != len(OrderService_ServiceDesc.Methods) {
		t.Fatalf("descriptor has %d methods, service desc has %d", got, len(OrderService_ServiceDesc.Methods))
	}
	if m := svc.Methods().ByName("RequestTransition"); m == nil || m.Output().Name() != "RequestTransitionResponse" {
		t.Fatalf("RequestTransition descriptor mismatch: %v", m)
	}
}

func exerciseGeneratedMessage(t *testing.T, msg any) {
	t.Helper()

	v := reflect.ValueOf(msg)

	callNoArg(t, v, "String")
	callNoArg(t, v, "ProtoReflect")
	callNoArg(t, v, "Descriptor")
	callGetterMethods(t, v)
	callNoArg(t, v, "Reset")

	nilReceiver := reflect.Zero(v.Type())
	callNoArg(t, nilReceiver, "ProtoReflect")
	callNoArg(t, nilReceiver, "Descriptor")
	callGetterMethods(t, nilReceiver)
}

func callGetterMethods(t *testing.T, v reflect.Value) {
	t.Helper()

	typ := v.Type()
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !strings.HasPrefix(m.Name, "Get") {
			continue
		}
		if m.Type.NumIn() != 1 || m.Type.NumOut() != 1 {
			continue
		}
		callNoArg(t, v, m.Name)
	}
}

func callNoArg(t *testing.T, v reflect.Value, method string) {
	t.Helper()

	mv := v.MethodByName(method)
	if !mv.IsValid() {
		return
	}
	if mv.Type().NumIn() != 0 {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("method %s panicked: %v", method, r)
		}
	}()

	_ = mv.Call(nil)
}
