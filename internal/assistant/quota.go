package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/samuelgomeslima/aibarber-sub001/internal/httperr"
)

// ======================================================
// Cota diária de mensagens por barbearia (ledger em redis)
// ======================================================

type Quota struct {
	rdb   *redis.Client
	limit int
}

func NewQuota(rdb *redis.Client, limit int) *Quota {
	if limit <= 0 {
		limit = 40
	}
	return &Quota{rdb: rdb, limit: limit}
}

func quotaKey(barbershopID uint, dateKey string) string {
	return fmt.Sprintf("ai_quota:%d:%s", barbershopID, dateKey)
}

// Consume incrementa o contador do dia e devolve quantas mensagens
// restam. Estourou → quota_exceeded; o incremento que estourou não é
// devolvido (o custo de contar uma a mais é menor que o de uma janela
// de corrida entre GET e INCR).
func (q *Quota) Consume(ctx context.Context, barbershopID uint, dateKey string) (int, error) {
	key := quotaKey(barbershopID, dateKey)

	used, err := q.rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, httperr.ErrBusiness("quota_store_unavailable")
	}

	if used == 1 {
		// chave nova: o dia expira sozinho
		q.rdb.Expire(ctx, key, 48*time.Hour)
	}

	if int(used) > q.limit {
		return 0, httperr.ErrBusiness("quota_exceeded")
	}

	return q.limit - int(used), nil
}

// Remaining lê o saldo sem consumir.
func (q *Quota) Remaining(ctx context.Context, barbershopID uint, dateKey string) (int, error) {
	key := quotaKey(barbershopID, dateKey)

	used, err := q.rdb.Get(ctx, key).Int()
	if err == redis.Nil {
		return q.limit, nil
	}
	if err != nil {
		return 0, httperr.ErrBusiness("quota_store_unavailable")
	}

	rest := q.limit - used
	if rest < 0 {
		rest = 0
	}
	return rest, nil
}
