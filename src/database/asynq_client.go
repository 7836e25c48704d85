package database

import (
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

var AsynqClient *asynq.Client

// InitAsynq initializes the Asynq client only if Redis is available.
func InitAsynq(log *zap.Logger) {
	if RedisClient == nil || RedisURI == "" {
		log.Warn("Redis not available, background jobs disabled")
		return
	}

	AsynqClient = asynq.NewClient(asynq.RedisClientOpt{Addr: RedisURI})
	log.Info("Asynq client initialized")
}
