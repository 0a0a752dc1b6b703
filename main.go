package main

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/config"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/routes"
	"github.com/AaQiBNoONaRi/saer.pk-branch-sub002/utils"
)

func main() {
	// Все логи и время на карточках в часовом поясе агентства
	time.Local = utils.PakistanLocation()

	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	// Redis нужен только лимитеру заявок на бронирование, без него работаем
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       0,
		})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		utils.SetRedis(rdb)
		log.Println("Connected to Redis")
	} else {
		log.Println("REDIS_ADDR not set, enquiry limiter disabled")
	}

	r := routes.SetupRouter(cfg)

	log.Printf("Server is running on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
