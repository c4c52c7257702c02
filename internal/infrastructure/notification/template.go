package notification

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"clearview_estimator/internal/domain/entities"

	"github.com/dustin/go-humanize"
)

//go:embed templates/*.html
var templateFS embed.FS

var estimateTemplate = template.Must(template.ParseFS(templateFS, "templates/estimate.html"))

var serviceLabels = map[entities.ServiceKey]string{
	entities.ServiceBasicBoth:            "Window cleaning, inside and out (defined package)",
	entities.ServiceBasicExt:             "Window cleaning, exterior only (defined package)",
	entities.ServiceStandardBoth:         "Window cleaning, inside and out (standard package)",
	entities.ServiceStandardExt:          "Window cleaning, exterior only (standard package)",
	entities.ServiceDriveway:             "Driveway power washing",
	entities.ServiceExteriorHouseWashing: "Exterior house washing",
	entities.ServiceBlinds:               "Blinds cleaning",
	entities.ServiceScreenRepair:         "Screen repair",
	entities.ServiceScreenBuilding:       "New screens",
}

var frequencyLabels = map[entities.Frequency]string{
	entities.FrequencyOneTime:     "One time",
	entities.FrequencyThreeMonths: "Every 3 months",
	entities.FrequencySixMonths:   "Every 6 months",
	entities.FrequencyYearly:      "Yearly",
}

type estimateLine struct {
	Label    string
	Quantity int
	Price    string
}

type estimateEmailData struct {
	CompanyName     string
	CustomerName    string
	QuoteID         string
	Lines           []estimateLine
	Frequency       string
	DiscountPercent int
	Total           string
	BookingURL      string
}

func newEstimateEmailData(companyName string, q entities.Quote) estimateEmailData {
	data := estimateEmailData{
		CompanyName:     companyName,
		CustomerName:    q.Customer.Name,
		QuoteID:         q.ID,
		Frequency:       frequencyLabel(q.Frequency),
		DiscountPercent: q.DiscountPercent,
		Total:           formatMoney(q.TotalPrice),
		BookingURL:      q.BookingURL,
	}
	if q.MainService != nil {
		data.Lines = append(data.Lines, lineFor(*q.MainService))
	}
	for _, a := range q.AddOns {
		data.Lines = append(data.Lines, lineFor(a))
	}
	return data
}

func lineFor(s entities.SelectedService) estimateLine {
	label, ok := serviceLabels[s.ServiceKey]
	if !ok {
		label = string(s.ServiceKey)
	}
	return estimateLine{Label: label, Quantity: s.Quantity, Price: formatMoney(s.Price)}
}

func frequencyLabel(f entities.Frequency) string {
	if label, ok := frequencyLabels[f]; ok {
		return label
	}
	return frequencyLabels[entities.FrequencyOneTime]
}

func formatMoney(amount int64) string {
	return "$" + humanize.Comma(amount)
}

func renderEstimate(data estimateEmailData) (string, error) {
	var buf bytes.Buffer
	if err := estimateTemplate.ExecuteTemplate(&buf, "estimate", data); err != nil {
		return "", fmt.Errorf("execute estimate template: %w", err)
	}
	return buf.String(), nil
}
