package domain

type Decoration struct {
	Tablecloth  string `json:"tablecloth"`
	NapkinColor string `json:"napkin_color"`
	Centerpiece string `json:"centerpiece"`
}
