package booking

import "time"

// Clock abstrai o "agora" para os use cases ficarem testáveis com
// relógio fixo.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}
