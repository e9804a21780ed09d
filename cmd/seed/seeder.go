package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/brianvoe/gofakeit/v7"
)

var errPartialSeed = errors.New("not every repair was created")

var (
	deviceTypes = []string{"smartphone", "tablet", "laptop", "desktop", "other"}

	deviceBrands = map[string][]string{
		"smartphone": {"iPhone 13", "iPhone 14 Pro", "Samsung Galaxy S23", "Xiaomi Redmi Note 12", "Google Pixel 7"},
		"tablet":     {"iPad Air 4", "iPad 10", "Samsung Tab S8", "Xiaomi Pad 6", "Lenovo Tab P11"},
		"laptop":     {"MacBook Air M1", "MacBook Pro 14", "HP Pavilion 15", "Lenovo ThinkPad T14", "ASUS VivoBook 15"},
		"desktop":    {"Custom build", "Dell OptiPlex", "HP ProDesk", "Lenovo IdeaCentre"},
		"other":      {"Nintendo Switch", "Apple Watch", "Steam Deck", "Router"},
	}

	problemTypes = []string{"screen", "battery", "charging", "water", "software", "performance", "audio", "connectivity", "other"}
	urgencies    = []string{"low", "medium", "high"}
)

const seedSource = "seed"

type repairPayload struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	DeviceType  string `json:"deviceType"`
	DeviceBrand string `json:"deviceBrand"`
	ProblemType string `json:"problemType"`
	Urgency     string `json:"urgency"`
	Address     string `json:"address"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

type seeder struct {
	target string
	client *http.Client
	out    io.Writer
	errOut io.Writer
}

func repairsURL(baseURL string) string {
	return strings.TrimRight(baseURL, "/") + "/api/repairs"
}

// run posts count repairs one by one. Individual failures are reported and
// counted; the returned error wraps errPartialSeed when any request failed.
func (s *seeder) run(ctx context.Context, count int) error {
	ok := 0
	for i := range count {
		if err := s.post(ctx, fakeRepair()); err != nil {
			fmt.Fprintf(s.errOut, "[%d/%d] %v\n", i+1, count, err)
			continue
		}
		ok++
	}

	fmt.Fprintf(s.out, "✅ Repairs created: %d/%d\n", ok, count)
	if ok != count {
		return fmt.Errorf("%w: %d of %d failed", errPartialSeed, count-ok, count)
	}
	return nil
}

func (s *seeder) post(ctx context.Context, payload repairPayload) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshalling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.target, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("server not reachable: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return nil
}

func fakeRepair() repairPayload {
	first := gofakeit.FirstName()
	last := gofakeit.LastName()
	deviceType := gofakeit.RandomString(deviceTypes)
	brand := gofakeit.RandomString(deviceBrands[deviceType])

	p := repairPayload{
		FirstName:   first,
		LastName:    last,
		Phone:       gofakeit.Phone(),
		DeviceType:  deviceType,
		DeviceBrand: brand,
		ProblemType: gofakeit.RandomString(problemTypes),
		Urgency:     gofakeit.RandomString(urgencies),
		Description: gofakeit.Sentence(8),
		Source:      seedSource,
	}

	// A quarter of the tickets come without an email, about a third without an address.
	if gofakeit.Number(1, 100) > 25 {
		p.Email = strings.ToLower(fmt.Sprintf("%s.%s.%d@%s", first, last, gofakeit.Number(1, 9999), gofakeit.DomainName()))
	}
	if gofakeit.Number(1, 100) > 35 {
		p.Address = gofakeit.Street()
	}
	if gofakeit.Bool() {
		p.Description += " (" + brand + ")"
	}

	return p
}
