package scheme

// TitleBlock holds the main inscription (stamp) data of a technical drawing.
// Designation and Name are mandatory for a valid scheme; the remaining fields
// are optional metadata the validator only recommends.
type TitleBlock struct {
	Designation  string `json:"designation,omitempty"`
	Name         string `json:"name,omitempty"`
	Developer    string `json:"developer,omitempty"`
	Checker      string `json:"checker,omitempty"`
	Approver     string `json:"approver,omitempty"`
	Organization string `json:"organization,omitempty"`
	Scale        string `json:"scale,omitempty"`
	SheetNumber  int    `json:"sheet_number,omitempty"`
	TotalSheets  int    `json:"total_sheets,omitempty"`
	Date         string `json:"date,omitempty"`
}
