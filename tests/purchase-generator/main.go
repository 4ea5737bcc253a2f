package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
)

type PurchaseEvent struct {
	EtsyOrderID string `json:"etsy_order_id"`
	AccessCode  string `json:"access_code"`
	Template    string `json:"template"`
}

var templates = []string{"sage_green", "old_money", "minimalist", "luxury_gold", "botanical"}

func randomString(n int) string {
	letters := []rune("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789")
	b := make([]rune, n)
	for i := range b {
		b[i] = letters[rand.Intn(len(letters))]
	}
	return string(b)
}

func generateRandomPurchase() PurchaseEvent {
	event := PurchaseEvent{
		EtsyOrderID: fmt.Sprintf("ETSY-%d", rand.Intn(9999999)),
	}
	// иногда код и шаблон оставляем пустыми, сервис должен справиться сам
	if rand.Intn(3) != 0 {
		event.AccessCode = strings.ToUpper(randomString(8))
	}
	if rand.Intn(3) != 0 {
		event.Template = templates[rand.Intn(len(templates))]
	}
	return event
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "purchases",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			event := generateRandomPurchase()
			data, _ := json.Marshal(event)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("purchase generated", event.EtsyOrderID)
		case <-ctx.Done():
			return
		}
	}
}
