package utils

import "testing"

// TestBusEmitOrder 按注册顺序同步回调
func TestBusEmitOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Register(EventResultUpdated, func(_ EventType, v any) { got = append(got, "a:"+v.(string)) })
	bus.Register(EventResultUpdated, func(_ EventType, v any) { got = append(got, "b:"+v.(string)) })
	bus.RegisterAll(func(e EventType, _ any) { got = append(got, "all:"+e.String()) })

	if !bus.Emit(EventResultUpdated, "x") {
		t.Fatal("Emit 应返回真")
	}
	want := []string{"a:x", "b:x", "all:result_updated"}
	if len(got) != len(want) {
		t.Fatalf("期望 %v, 实际 %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("第 %d 个: 期望 %s, 实际 %s", i, want[i], got[i])
		}
	}
	if bus.Count(EventResultUpdated) != 3 || bus.Count(EventInputChanged) != 1 {
		t.Errorf("Count 不正确: %d %d", bus.Count(EventResultUpdated), bus.Count(EventInputChanged))
	}
}

// TestBusNoHandler 无处理函数
func TestBusNoHandler(t *testing.T) {
	bus := NewBus()
	bus.Register(EventInputChanged, nil)
	if bus.Emit(EventInputChanged, nil) {
		t.Error("无处理函数时 Emit 应返回假")
	}
	if EventType(99).String() != "unknown" {
		t.Errorf("未知事件名称: %s", EventType(99))
	}
}
