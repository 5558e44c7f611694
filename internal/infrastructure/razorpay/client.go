package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Quadr1on/mantrigamugil/internal/domain"
)

// Client talks to the Razorpay Orders API with basic auth. Only order
// creation is needed; capture happens on the hosted checkout side.
type Client struct {
	BaseURL    string
	KeyID      string
	KeySecret  string
	httpClient *http.Client
}

func NewClient(baseURL, keyID, keySecret string) *Client {
	return &Client{
		BaseURL:   baseURL,
		KeyID:     keyID,
		KeySecret: keySecret,
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

type createOrderRequest struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

type createOrderResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

func (c *Client) CreateOrder(ctx context.Context, req *domain.GatewayOrderRequest) (*domain.GatewayOrder, error) {
	requestBodyBytes, err := json.Marshal(createOrderRequest{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/orders", c.BaseURL), bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.SetBasicAuth(c.KeyID, c.KeySecret)

	response, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGatewayUnavailable, err)
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var orderResponse createOrderResponse
		if err := json.Unmarshal(responseBodyBytes, &orderResponse); err != nil {
			return nil, err
		}
		return &domain.GatewayOrder{
			ID:       orderResponse.ID,
			Receipt:  orderResponse.Receipt,
			Amount:   orderResponse.Amount,
			Currency: orderResponse.Currency,
			Status:   orderResponse.Status,
		}, nil
	}

	var gatewayError errorResponse
	if err := json.Unmarshal(responseBodyBytes, &gatewayError); err != nil || gatewayError.Error.Description == "" {
		return nil, fmt.Errorf("%w: status %d", domain.ErrGatewayUnavailable, response.StatusCode)
	}
	return nil, fmt.Errorf("%w: %s", domain.ErrGatewayUnavailable, gatewayError.Error.Description)
}

func (c *Client) VerifySignature(gatewayOrderID, gatewayPaymentID, signature string) bool {
	return VerifyPaymentSignature(gatewayOrderID, gatewayPaymentID, signature, c.KeySecret)
}
