package service

import (
	"context"
	"fmt"
	"time"
)

// PaymentService fabricates the simulated payment artifacts. The PIX payload
// is assembled by string interpolation and is NOT a valid settlement payload;
// the pacing delay exists only to drive a loading affordance on the client.
type PaymentService interface {
	BuildPixPayload(orderID string, amountCents int64) string
	AwaitConfirmation(ctx context.Context) error
}

type paymentServiceImpl struct {
	merchantName string
	pacingDelay  time.Duration
}

func NewPaymentService(merchantName string, pacingDelay time.Duration) PaymentService {
	return &paymentServiceImpl{
		merchantName: merchantName,
		pacingDelay:  pacingDelay,
	}
}

func (s *paymentServiceImpl) BuildPixPayload(orderID string, amountCents int64) string {
	amount := fmt.Sprintf("%d.%02d", amountCents/100, amountCents%100)
	return fmt.Sprintf(
		"00020126580014BR.GOV.BCB.PIX0136%s5204000053039865406%s5802BR5913%s6009SAO PAULO62070503***6304",
		orderID, amount, s.merchantName,
	)
}

func (s *paymentServiceImpl) AwaitConfirmation(ctx context.Context) error {
	select {
	case <-time.After(s.pacingDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
