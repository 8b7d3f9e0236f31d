package api

type prospectionForm struct {
	Date               string `json:"date" form:"date"`
	ClientName         string `json:"client_name" form:"client_name"`
	Specialty          string `json:"specialty" form:"specialty"`
	Structure          string `json:"structure" form:"structure"`
	Phone              string `json:"phone" form:"phone"`
	ProspectProfiles   string `json:"prospect_profiles" form:"prospect_profiles"`
	ProductsPresented  string `json:"products_presented" form:"products_presented"`
	ProductsPrescribed string `json:"products_prescribed" form:"products_prescribed"`
}

type recapFilterQuery struct {
	DateStart  string `query:"date_start"`
	DateEnd    string `query:"date_end"`
	Commercial string `query:"commercial"`
	Zone       string `query:"zone"`
	Specialty  string `query:"specialty"`
}

type stockForm struct {
	Duopharm  string `json:"duopharm" form:"duopharm"`
	Ubipharm  string `json:"ubipharm" form:"ubipharm"`
	Laborex   string `json:"laborex" form:"laborex"`
	Sodipharm string `json:"sodipharm" form:"sodipharm"`
}
