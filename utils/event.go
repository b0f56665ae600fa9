package utils

// EventType 注册的事件类型标记
type EventType uint16

// 计算器事件
const (
	EventInputChanged      EventType = iota + 1 // 输入变更
	EventResultUpdated                          // 结果更新
	EventValidationFailed                       // 校验失败
	EventCalculationFailed                      // 计算失败
)

// eventName 事件名称
var eventName = map[EventType]string{
	EventInputChanged:      "input_changed",
	EventResultUpdated:     "result_updated",
	EventValidationFailed:  "validation_failed",
	EventCalculationFailed: "calculation_failed",
}

// String 事件名称
func (t EventType) String() string {
	if name, ok := eventName[t]; ok {
		return name
	}
	return "unknown"
}

// Handler 事件处理函数
type Handler func(eventType EventType, value any)

// Bus 事件总线
// @ 先通过 Register 注册处理函数, 再由 Emit 在调用方协程中按注册顺序同步回调.
// @ 处理函数中再次 Emit 会立即嵌套执行, 不做排队.
type Bus interface {
	Register(eventType EventType, handler Handler) // 注册事件
	RegisterAll(handler Handler)                   // 注册全部事件
	Emit(eventType EventType, value any) bool      // 发送事件, 无处理函数返回假
	Count(eventType EventType) int                 // 处理函数数量
}

// busImpl 实现 Bus 接口
type busImpl struct {
	handlers map[EventType][]Handler // 注册的事件处理器
	all      []Handler               // 全部事件处理器
}

// NewBus 创建事件总线
func NewBus() Bus {
	return &busImpl{handlers: make(map[EventType][]Handler)}
}

// Register 注册事件
func (b *busImpl) Register(eventType EventType, handler Handler) {
	if handler == nil {
		return
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// RegisterAll 注册全部事件
func (b *busImpl) RegisterAll(handler Handler) {
	if handler == nil {
		return
	}
	b.all = append(b.all, handler)
}

// Emit 发送事件
func (b *busImpl) Emit(eventType EventType, value any) bool {
	list := b.handlers[eventType]
	if len(list) == 0 && len(b.all) == 0 {
		return false
	}
	for _, h := range list {
		h(eventType, value)
	}
	for _, h := range b.all {
		h(eventType, value)
	}
	return true
}

// Count 处理函数数量
func (b *busImpl) Count(eventType EventType) int {
	return len(b.handlers[eventType]) + len(b.all)
}
