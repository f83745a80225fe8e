package ticket

// routingTable maps a ticket category to the department code that owns
// it. Facilities work is handled by operations.
var routingTable = map[string]string{
	CategoryIT:         "IT",
	CategoryHR:         "HR",
	CategoryFinance:    "FINANCE",
	CategoryOperations: "OPERATIONS",
	CategoryFacilities: "OPERATIONS",
}

// RouteCategory returns the department code a category routes to.
// Unrecognized categories land in operations as well, so a ticket is
// never dropped for a bad category.
func RouteCategory(category string) string {
	if code, ok := routingTable[category]; ok {
		return code
	}
	return "OPERATIONS"
}
