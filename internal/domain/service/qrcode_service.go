package service

// QRCodeService abstracts QR code generation for storefront links.
type QRCodeService interface {
	// GenerateStorefrontQR renders the given storefront URL as a PNG QR code.
	GenerateStorefrontQR(url string) ([]byte, error)
}
