package alerts

// SampleCheck returns the fixture run used by sample mode. It only ever
// feeds transient display state; nothing here reaches the store.
func SampleCheck() CheckResult {
	return CheckResult{
		Alerts: []Alert{
			{
				ID:                "inv-001",
				Title:             "Low Stock: Chanel No. 5 EDP 100ml",
				Category:          "Inventory",
				Severity:          "Critical",
				Description:       "Current stock at 12 units, well below minimum threshold of 50 units. Projected stockout in 3 days based on current sales velocity.",
				AffectedItems:     "Chanel No. 5 EDP 100ml (SKU: CHN5-100)",
				RecommendedAction: "Place emergency reorder of 200 units with priority shipping. Contact supplier for expedited fulfillment.",
				Timestamp:         "2024-01-15 09:23",
			},
			{
				ID:                "inv-002",
				Title:             "Approaching Reorder: Tom Ford Oud Wood",
				Category:          "Inventory",
				Severity:          "Warning",
				Description:       "Stock at 95 units, approaching reorder point of 100. Current demand trend suggests reorder within 5 days.",
				AffectedItems:     "Tom Ford Oud Wood 50ml (SKU: TF-OW-50)",
				RecommendedAction: "Schedule standard reorder within 48 hours to maintain optimal stock levels.",
				Timestamp:         "2024-01-15 09:23",
			},
			{
				ID:                "ship-001",
				Title:             "Delayed Shipment: Dior Sauvage Batch",
				Category:          "Shipping",
				Severity:          "Critical",
				Description:       "Shipment SH-2024-0891 delayed 72 hours at customs in Rotterdam. Contains 500 units of Dior Sauvage EDT and EDP variants.",
				AffectedItems:     "Dior Sauvage EDT 100ml (250 units), Dior Sauvage EDP 60ml (250 units)",
				RecommendedAction: "Contact customs broker immediately. Prepare alternative stock allocation from secondary warehouse.",
				Timestamp:         "2024-01-15 08:45",
			},
			{
				ID:                "ship-002",
				Title:             "Routing Change: Mediterranean Shipment",
				Category:          "Shipping",
				Severity:          "Info",
				Description:       "Shipment SH-2024-0903 rerouted via alternative port due to weather conditions. Estimated 12-hour delay.",
				AffectedItems:     "Mixed luxury fragrance order (15 SKUs)",
				RecommendedAction: "Monitor tracking updates. No immediate action required.",
				Timestamp:         "2024-01-15 07:30",
			},
			{
				ID:                "ord-001",
				Title:             "Stale Order: Wholesale Client Pending 14 Days",
				Category:          "Orders",
				Severity:          "Warning",
				Description:       "Order ORD-2024-4521 from premium wholesale client has been in processing for 14 days without fulfillment confirmation.",
				AffectedItems:     "Bulk order: 50x Acqua di Parma Colonia, 30x Jo Malone English Pear",
				RecommendedAction: "Escalate to fulfillment team lead. Contact client with status update and revised timeline.",
				Timestamp:         "2024-01-15 06:00",
			},
		},
		TotalCritical:  2,
		TotalWarning:   2,
		TotalInfo:      1,
		OverallSummary: "Sample mode active. 5 alerts detected across inventory, shipping, and orders. 2 critical issues require immediate attention: low stock on Chanel No. 5 and a customs-delayed Dior Sauvage shipment.",
		CheckTimestamp: "2024-01-15 09:23 UTC",
	}
}
