package models

type VehicleAttrs struct {
	Manufacturer string `json:"manufacturer" validate:"required"`
	Model        string `json:"model"`
	Year         int    `json:"year" validate:"min=0"`
	MileageKm    int64  `json:"mileageKm" validate:"min=0"`
	Fuel         string `json:"fuel" validate:"required,oneof=petrol diesel hybrid electric gas"`
	Transmission string `json:"transmission" validate:"required,oneof=automatic manual"`
	Color        string `json:"color"`
	BodyType     string `json:"bodyType" validate:"required,oneof=sedan suv hatchback pickup van other"`
	Steering     string `json:"steering" validate:"required,oneof=left right"`
	VIN          string `json:"vin,omitempty"`
}

type MotorcycleAttrs struct {
	Manufacturer string `json:"manufacturer" validate:"required"`
	Model        string `json:"model"`
	Year         int    `json:"year" validate:"min=0"`
	MileageKm    int64  `json:"mileageKm" validate:"min=0"`
	EngineCc     int    `json:"engineCc" validate:"min=0"`
	Color        string `json:"color"`
}

type TireAttrs struct {
	Brand       string `json:"brand" validate:"required"`
	Width       int    `json:"width" validate:"min=0"`
	AspectRatio int    `json:"aspectRatio" validate:"min=0"`
	RimDiameter int    `json:"rimDiameter" validate:"min=0"`
	Season      string `json:"season" validate:"required,oneof=summer winter all_season"`
	Condition   string `json:"condition" validate:"required,oneof=new used"`
	Quantity    int    `json:"quantity" validate:"min=0"`
}

type PartAttrs struct {
	Manufacturer string `json:"manufacturer"`
	PartType     string `json:"partType" validate:"required,oneof=engine body electrical suspension interior other"`
	Condition    string `json:"condition" validate:"required,oneof=new used"`
}

type RentalAttrs struct {
	Manufacturer string `json:"manufacturer" validate:"required"`
	Model        string `json:"model"`
	Year         int    `json:"year" validate:"min=0"`
	Transmission string `json:"transmission" validate:"required,oneof=automatic manual"`
	Fuel         string `json:"fuel" validate:"required,oneof=petrol diesel hybrid electric gas"`
	Seats        int    `json:"seats" validate:"min=0"`
	WithDriver   bool   `json:"withDriver"`
}

type ServiceCenterAttrs struct {
	Name        string  `json:"name" validate:"required"`
	ServiceType string  `json:"serviceType" validate:"required,oneof=repair tire wash diagnostics body other"`
	Rating      float64 `json:"rating" validate:"min=0,max=5"`
}
