package dto

type DeliveryProfileNode struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
}

type DeliveryProfileConnection struct {
	Edges []struct {
		Node DeliveryProfileNode `json:"node"`
	} `json:"edges,omitempty"`
}

type DeliveryProfilesQueryData struct {
	DeliveryProfiles *DeliveryProfileConnection `json:"deliveryProfiles"`
}

type DeliveryProfileUpdateData struct {
	DeliveryProfileUpdate *DeliveryProfileUpdatePayload `json:"deliveryProfileUpdate"`
}

type DeliveryProfileUpdatePayload struct {
	Profile    *DeliveryProfileNode `json:"profile,omitempty"`
	UserErrors []ShopifyUserError   `json:"userErrors,omitempty"`
}
