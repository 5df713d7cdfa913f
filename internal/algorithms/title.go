package algorithms

import (
	"fmt"
	"strconv"
	"strings"

	"autozar_backend/internal/models"
)

// CompositeTitle synthesizes a searchable title from category attributes,
// e.g. "Toyota Prius 2015" or "Michelin 205/55R16".
func CompositeTitle(l *models.Listing) string {
	var parts []string
	switch {
	case l.Vehicle != nil:
		parts = []string{l.Vehicle.Manufacturer, l.Vehicle.Model, yearString(l.Vehicle.Year)}
	case l.Motorcycle != nil:
		parts = []string{l.Motorcycle.Manufacturer, l.Motorcycle.Model, yearString(l.Motorcycle.Year)}
	case l.Tire != nil:
		parts = []string{l.Tire.Brand, TireSize(l.Tire)}
	case l.Part != nil:
		parts = []string{l.Title, l.Part.Manufacturer}
	case l.Rental != nil:
		parts = []string{l.Rental.Manufacturer, l.Rental.Model, yearString(l.Rental.Year)}
	case l.ServiceCenter != nil:
		parts = []string{l.ServiceCenter.Name}
	}
	return joinNonEmpty(parts)
}

// DisplayTitle prefers the seller's own title and falls back to the composite one.
func DisplayTitle(l *models.Listing) string {
	if t := strings.TrimSpace(l.Title); t != "" {
		return t
	}
	return CompositeTitle(l)
}

// TireSize renders the conventional "205/55R16" notation, or "" when incomplete.
func TireSize(t *models.TireAttrs) string {
	if t == nil || t.Width <= 0 || t.AspectRatio <= 0 || t.RimDiameter <= 0 {
		return ""
	}
	return fmt.Sprintf("%d/%dR%d", t.Width, t.AspectRatio, t.RimDiameter)
}

// searchHaystack is the lower-cased text the free-text predicate scans.
func searchHaystack(l *models.Listing) string {
	parts := []string{CompositeTitle(l), l.Title}
	if l.Vehicle != nil {
		parts = append(parts, l.Vehicle.VIN, l.Description)
	}
	return strings.ToLower(joinNonEmpty(parts))
}

func yearString(y int) string {
	if y <= 0 {
		return ""
	}
	return strconv.Itoa(y)
}

func joinNonEmpty(parts []string) string {
	out := parts[:0:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return strings.Join(out, " ")
}
