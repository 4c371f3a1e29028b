package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoggerWithoutDBIsNoop(t *testing.T) {
	assert.NoError(t, New(nil).Log(1, nil, "booking_created", "booking", nil, nil))
}

// Dispatch nunca bloqueia quem chama: muito além da capacidade da fila,
// os excedentes são descartados e a chamada volta na hora.
func TestDispatchNeverBlocks(t *testing.T) {
	d := NewDispatcher(New(nil))

	for i := 0; i < queueSize*5; i++ {
		d.Dispatch(Event{
			BarbershopID: 1,
			Action:       "booking_created",
			Entity:       "booking",
		})
	}
}
