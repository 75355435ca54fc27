package document

//go:generate go run go.uber.org/mock/mockgen -destination=mocks/mock_client.go -package=mocks . Client

import "context"

// ReviewStatus is the receiver's verdict on a shared document.
type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "PENDING"
	ReviewStatusAccepted ReviewStatus = "ACCEPTED"
	ReviewStatusRejected ReviewStatus = "REJECTED"
)

const (
	ProductTradeFinance = "tradeFinance"
	SubProductLC        = "lc"
)

// Document is a registered trade document.
type Document struct {
	ID           string       `json:"id"`
	Name         string       `json:"name"`
	Hash         string       `json:"hash"`
	TypeID       string       `json:"typeId"`
	ReviewStatus ReviewStatus `json:"reviewStatus,omitempty"`
	Comment      string       `json:"comment,omitempty"`
}

// Reviewed reports whether the receiver has given a verdict.
func (d *Document) Reviewed() bool {
	return d.ReviewStatus == ReviewStatusAccepted || d.ReviewStatus == ReviewStatusRejected
}

// Context scopes documents to a presentation.
type Context struct {
	ProductID            string `json:"productId"`
	SubProductID         string `json:"subProductId"`
	PresentationStaticID string `json:"lcPresentationStaticId"`
}

// PresentationContext returns the document context of a presentation.
func PresentationContext(staticID string) Context {
	return Context{ProductID: ProductTradeFinance, SubProductID: SubProductLC, PresentationStaticID: staticID}
}

// Client talks to the document registry.
type Client interface {
	GetDocumentsByContext(ctx context.Context, docCtx Context) ([]*Document, error)
	ShareDocuments(ctx context.Context, documentIDs []string, recipients []string, docCtx Context) error
	DeleteDocument(ctx context.Context, documentID string) error
}
