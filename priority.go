package pushover

import "strconv"

const (
	// Emergency retry interval floor, in seconds.
	MinEmergencyRetry = 30
	// Emergency expiry ceiling, in seconds.
	MaxEmergencyExpire = 10800

	emergencyValue = 2
)

// Priority is the urgency of a notification. It is implemented only by
// Level and Emergency.
type Priority interface {
	isPriority()
}

// Level is a non-emergency priority. The zero value is Normal.
type Level int8

const (
	Lowest Level = -2
	Low    Level = -1
	Normal Level = 0
	High   Level = 1
)

func (Level) isPriority() {}

func (l Level) String() string {
	switch l {
	case Lowest:
		return "lowest"
	case Low:
		return "low"
	case Normal:
		return "normal"
	case High:
		return "high"
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// Emergency repeats the notification every Retry seconds until it is
// acknowledged or Expire seconds have passed. Retry is raised to
// MinEmergencyRetry and Expire is capped at MaxEmergencyExpire when the
// request is built.
type Emergency struct {
	Retry  int
	Expire int
}

func (Emergency) isPriority() {}

func (Emergency) String() string { return "emergency" }

// clamped returns the retry and expire values sent on the wire.
func (e Emergency) clamped() (retry, expire int) {
	return max(e.Retry, MinEmergencyRetry), min(e.Expire, MaxEmergencyExpire)
}

// priorityValue maps p to the integer the API expects. Levels outside the
// declared range are sent as Normal.
func priorityValue(p Priority) int {
	switch p := p.(type) {
	case Emergency:
		return emergencyValue
	case Level:
		switch p {
		case High, Low, Lowest:
			return int(p)
		}
		return int(Normal)
	}
	return int(Normal)
}

// Formatting selects how the message body is rendered on the device.
type Formatting uint8

const (
	Text Formatting = iota
	HTML
	Monospace
)

func (f Formatting) String() string {
	switch f {
	case HTML:
		return "html"
	case Monospace:
		return "monospace"
	}
	return "text"
}
