package document

type RejectDocumentDTO struct {
	Reason string `json:"reason" binding:"required"`
}
