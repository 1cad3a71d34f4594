// internals/features/payments/service/midtrans.go
package service

import (
	"errors"
	"fmt"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	"github.com/maruf-pfc/opsboard-sub000/internals/configs"
	paymentModel "github.com/maruf-pfc/opsboard-sub000/internals/features/payments/model"
)

var ErrGatewayDisabled = errors.New("payment gateway not configured")

// Gateway wraps the Midtrans Snap client. Built once in main from Settings
// and passed to the payments controller; nil when no server key is set.
type Gateway struct {
	client snap.Client
}

func NewGateway(cfg configs.MidtransSettings) *Gateway {
	if cfg.ServerKey == "" {
		return nil
	}
	g := &Gateway{}
	env := midtrans.Sandbox
	if cfg.Production {
		env = midtrans.Production
	}
	g.client.New(cfg.ServerKey, env)
	return g
}

type CustomerInput struct {
	Name  string
	Email string
}

// CreateCheckout mints a Snap transaction for the payment and returns the
// order id and redirect URL.
func (g *Gateway) CreateCheckout(p paymentModel.PaymentModel, cust CustomerInput) (string, string, error) {
	if g == nil {
		return "", "", ErrGatewayDisabled
	}
	if p.PaymentAmount <= 0 {
		return "", "", errors.New("payment amount must be positive")
	}

	orderID := fmt.Sprintf("opsboard-%s", p.PaymentID)
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderID,
			GrossAmt: p.PaymentAmount,
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: cust.Name,
			Email: cust.Email,
		},
	}

	resp, merr := g.client.CreateTransaction(req)
	if merr != nil {
		return "", "", fmt.Errorf("midtrans: %s", merr.Error())
	}
	return orderID, resp.RedirectURL, nil
}
