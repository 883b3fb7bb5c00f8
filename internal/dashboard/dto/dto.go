package dto

// Stats mirrors the dashboard counter grid. Every field is an independent
// point-in-time count; the set is not a consistent snapshot.
type Stats struct {
	TotalShipments    int `json:"totalShipments"`
	OpenShipments     int `json:"openShipments"`
	OrderedShipments  int `json:"orderedShipments"`
	ReceivedShipments int `json:"receivedShipments"`
	AmazonStock       int `json:"amazonStock"`
	InStock           int `json:"inStock"`
	CompanyOrders     int `json:"companyOrders"`
	PendingOrders     int `json:"pendingOrders"`
}
