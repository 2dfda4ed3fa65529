package dto

// SIIAFPLookupRequest asks for the AFP affiliation of a RUT. Any punctuation is accepted.
type SIIAFPLookupRequest struct {
	RUT string `json:"rut" binding:"required,max=20"`
}
