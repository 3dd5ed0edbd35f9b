// Package donate holds the static Binance Pay donation instructions.
package donate

// Instructions is the content of a donation page
type Instructions struct {
	Title    string
	Subtitle string
	Steps    []string
	QRImage  string
	QRAlt    string
	BackURL  string
	BackText string
}

// QRImagePath is where the server exposes the Binance Pay QR code
const QRImagePath = "/images/binance-qr.png"

// Binance returns the Binance Pay instructions
func Binance() Instructions {
	return Instructions{
		Title:    "Donate with Binance Pay",
		Subtitle: "Thanks for supporting the project with crypto!",
		Steps: []string{
			"Open the Binance app on your phone.",
			"Go to the Binance Pay section.",
			"Choose 'Scan' and point it at the QR code below.",
			"Enter the amount in USDT.",
			"Confirm the transaction.",
		},
		QRImage:  QRImagePath,
		QRAlt:    "Binance Pay QR Code for Donations",
		BackURL:  "/Donate",
		BackText: "Back to donations",
	}
}
