package audit

import "log"

type Event struct {
	BarbershopID uint
	UserID       *uint
	Action       string
	Entity       string
	EntityID     *uint
	Metadata     any
}

// fila em memória entre a requisição e a gravação do log
const queueSize = 100

// Dispatcher grava a trilha de auditoria fora do caminho da requisição:
// agendamento, caixa e assistente despacham e seguem em frente.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, queueSize),
	}

	go d.drain()
	return d
}

func (d *Dispatcher) drain() {
	for ev := range d.queue {
		err := d.logger.Log(
			ev.BarbershopID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		)
		if err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch enfileira sem esperar. Fila cheia descarta o evento: perder
// um registro de auditoria custa menos que travar uma requisição.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
