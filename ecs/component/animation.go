package component

// StateSensor is a one-shot flag raised by an animator when a state is
// entered and cleared by whoever consumes it.
type StateSensor interface {
	Peek() bool
	Consume() bool
}

var _ StateSensor = (*Sensor)(nil)

// Sensor is the in-process StateSensor. A nil Sensor never fires.
type Sensor struct {
	entered bool
}

func NewSensor() *Sensor {
	return &Sensor{}
}

func (s *Sensor) Fire() {
	if s == nil {
		return
	}
	s.entered = true
}

func (s *Sensor) Peek() bool {
	return s != nil && s.entered
}

// Consume reports whether the flag was raised and clears it.
func (s *Sensor) Consume() bool {
	if s == nil || !s.entered {
		return false
	}
	s.entered = false
	return true
}

func (s *Sensor) Reset() {
	if s == nil {
		return
	}
	s.entered = false
}
