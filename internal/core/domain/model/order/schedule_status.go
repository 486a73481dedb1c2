package order

// ScheduleStatus tells how an order is doing against its delivery deadline.
type ScheduleStatus int

const (
	UnknownScheduleStatus ScheduleStatus = iota
	OnTime
	AtRisk
	Late
)

func (s ScheduleStatus) String() string {
	switch s {
	case OnTime:
		return "OnTime"
	case AtRisk:
		return "AtRisk"
	case Late:
		return "Late"
	default:
		return "Unknown"
	}
}
