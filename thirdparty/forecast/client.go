package forecast

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/muhammadheryan/restock/constant"
	"github.com/muhammadheryan/restock/model"
	"github.com/muhammadheryan/restock/utils/logger"
	"go.uber.org/zap"
)

const recommendationsPath = "/v1/restock/recommendations"

// Client is the recommendation store boundary. Whatever the forecasting
// service returns is normalized into model.RestockRecommendation here.
type Client interface {
	ListRecommendations(ctx context.Context) ([]model.RestockRecommendation, error)
}

type httpClient struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) Client {
	return &httpClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// rawRecommendation accepts both field spellings used by the service versions.
type rawRecommendation struct {
	ProductID                uint64   `json:"productId"`
	ProductName              string   `json:"productName"`
	SKU                      string   `json:"sku"`
	CurrentStock             float64  `json:"currentStock"`
	ReorderLevel             float64  `json:"reorderLevel"`
	RecommendedQuantity      *float64 `json:"recommendedQuantity"`
	RecommendedOrderQuantity *float64 `json:"recommendedOrderQuantity"`
	VendorID                 uint64   `json:"vendorId"`
	VendorName               string   `json:"vendorName"`
	Urgency                  string   `json:"urgency"`
	Confidence               *float64 `json:"confidence"`
}

type envelope struct {
	Data            []rawRecommendation `json:"data"`
	Recommendations []rawRecommendation `json:"recommendations"`
}

func (c *httpClient) ListRecommendations(ctx context.Context) ([]model.RestockRecommendation, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+recommendationsPath, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("forecast request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read forecast response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast returned status %d: %s", resp.StatusCode, string(body))
	}

	raws, err := decode(body)
	if err != nil {
		return nil, err
	}
	return normalize(raws), nil
}

func decode(body []byte) ([]rawRecommendation, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var raws []rawRecommendation
		if err := json.Unmarshal(trimmed, &raws); err != nil {
			return nil, fmt.Errorf("decode forecast list: %w", err)
		}
		return raws, nil
	}
	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("decode forecast envelope: %w", err)
	}
	if env.Data != nil {
		return env.Data, nil
	}
	return env.Recommendations, nil
}

// normalize maps raw records onto the single recommendation shape. Records
// without a product id are dropped; a repeated product id keeps its first record.
func normalize(raws []rawRecommendation) []model.RestockRecommendation {
	out := make([]model.RestockRecommendation, 0, len(raws))
	seen := make(map[uint64]struct{}, len(raws))
	for _, r := range raws {
		if r.ProductID == 0 {
			continue
		}
		if _, dup := seen[r.ProductID]; dup {
			logger.Warn("[forecast] duplicate recommendation dropped", zap.Uint64("product_id", r.ProductID))
			continue
		}
		seen[r.ProductID] = struct{}{}

		qty := r.RecommendedQuantity
		if qty == nil {
			qty = r.RecommendedOrderQuantity
		}

		urgency, ok := constant.ParseUrgency(r.Urgency)
		if !ok {
			urgency = constant.UrgencyLow
		}

		var confidence *float64
		if r.Confidence != nil {
			c := math.Min(math.Max(*r.Confidence, 0), 100)
			confidence = &c
		}

		out = append(out, model.RestockRecommendation{
			ProductID:           r.ProductID,
			ProductName:         r.ProductName,
			SKU:                 r.SKU,
			CurrentStock:        nonNegative(r.CurrentStock),
			ReorderLevel:        nonNegative(r.ReorderLevel),
			RecommendedQuantity: int(nonNegativePtr(qty)),
			VendorID:            r.VendorID,
			VendorName:          r.VendorName,
			Urgency:             urgency,
			Confidence:          confidence,
		})
	}
	return out
}

func nonNegative(f float64) int64 {
	if f <= 0 || math.IsNaN(f) {
		return 0
	}
	return int64(math.Round(f))
}

func nonNegativePtr(f *float64) int64 {
	if f == nil {
		return 0
	}
	return nonNegative(*f)
}
