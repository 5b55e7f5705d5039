package assistant

// EquipmentSnapshot is the reduced equipment view shared with the
// advisory service: name, category and usage hours only, no rates,
// no lab locations, no contact data.
type EquipmentSnapshot struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Hours    int    `json:"hours"`
}

// generateRequest is the wire request of the generateContent endpoint
type generateRequest struct {
	SystemInstruction *content         `json:"systemInstruction,omitempty"`
	Contents          []content        `json:"contents"`
	GenerationConfig  generationConfig `json:"generationConfig"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
}

// generateResponse is the wire response of the generateContent endpoint
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (r *generateResponse) text() string {
	for _, c := range r.Candidates {
		for _, p := range c.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}
