package utils

import (
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// CanSubmitEnquiry проверяет, не частит ли клиент с заявками на бронирование.
// Не чаще 1 заявки в 10 секунд и не более 30 в час с одного IP.
func CanSubmitEnquiry(rdb *redis.Client, key string) (bool, string) {
	ctx := RedisCtx()
	burstKey := fmt.Sprintf("enquiry_burst_%s", key)
	hourKey := fmt.Sprintf("enquiry_hour_%s", key)
	if rdb.Exists(ctx, burstKey).Val() > 0 {
		return false, "Please wait a few seconds before sending another enquiry"
	}
	cnt, _ := rdb.Get(ctx, hourKey).Int()
	if cnt >= 30 {
		return false, "Enquiry limit reached, please try again later"
	}
	return true, ""
}

// MarkEnquirySent фиксирует отправленную заявку
func MarkEnquirySent(rdb *redis.Client, key string) {
	ctx := RedisCtx()
	burstKey := fmt.Sprintf("enquiry_burst_%s", key)
	hourKey := fmt.Sprintf("enquiry_hour_%s", key)
	rdb.Set(ctx, burstKey, 1, 10*time.Second)
	rdb.Incr(ctx, hourKey)
	rdb.Expire(ctx, hourKey, time.Hour)
}
