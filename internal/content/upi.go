package content

import "github.com/aumai/dhansetu/internal/model"

// upiTopicOrder fixes the listing order for guide topics. Map iteration
// order would scramble it.
var upiTopicOrder = []string{"setup", "security", "disputes", "limits"}

// Steps carry their own numbering so callers print them verbatim.
var builtinUPIGuides = map[string]model.UPIGuideEntry{
	"setup": {
		Topic: "Setting Up UPI",
		Steps: []string{
			"1. Download a UPI app (PhonePe, Google Pay, Paytm, BHIM, or your bank's app)",
			"2. Register with your mobile number (must be linked to your bank account)",
			"3. Verify via SMS OTP sent to your registered mobile",
			"4. Select your bank and link your bank account",
			"5. Set a 6-digit UPI PIN (you need your debit card number and expiry date for this)",
			"6. Your UPI ID is created (e.g., yourphone@ybl for PhonePe, yourphone@okaxis for GPay)",
			"7. You can now send and receive money instantly",
		},
		Tips: []string{"Keep your registered mobile number active", "Remember your UPI PIN securely"},
	},
	"security": {
		Topic: "UPI Security Best Practices",
		Steps: []string{
			"1. NEVER share your UPI PIN with anyone - not even bank officials",
			"2. NEVER share OTP received on your phone with any caller",
			"3. Do NOT scan QR codes sent by strangers claiming to 'send' you money",
			"4. Verify the receiver's name before confirming any payment",
			"5. Enable app lock (fingerprint/PIN) on your UPI app",
			"6. Check transaction amount carefully before entering PIN",
			"7. Regularly check your transaction history for unauthorized transactions",
		},
		Tips: []string{
			"Banks NEVER call asking for UPI PIN or OTP",
			"To RECEIVE money, you never need to scan a QR code or enter PIN",
			"Report suspicious activity immediately",
		},
		Warnings: []string{
			"Collect requests from unknown numbers are often scams",
			"No UPI app charges fees - callers claiming 'UPI fees' are fraudsters",
		},
	},
	"disputes": {
		Topic: "UPI Dispute Resolution",
		Steps: []string{
			"1. Check your bank account balance to confirm if money was actually debited",
			"2. Wait 30 minutes - sometimes transactions reverse automatically",
			"3. If not resolved, raise a complaint in your UPI app (usually under Help/Support)",
			"4. Note down the UPI Transaction Reference Number (UTR/RRN)",
			"5. If unresolved after 48 hours, contact your bank's customer care",
			"6. File complaint on NPCI portal: npci.org.in/what-we-do/upi/dispute-redressal",
			"7. If still unresolved after 30 days, file on RBI's CMS portal: cms.rbi.org.in",
		},
		Tips: []string{"Always save transaction screenshots", "Keep UTR/RRN numbers for reference"},
	},
	"limits": {
		Topic: "UPI Transaction Limits",
		Steps: []string{
			"1. Per-transaction limit: Rs 1,00,000 (Rs 1 lakh) for most transactions",
			"2. Capital market/IPO payments: up to Rs 5,00,000",
			"3. Tax payments: up to Rs 5,00,000",
			"4. Hospital/education: up to Rs 5,00,000",
			"5. UPI Lite: Rs 500 per transaction, Rs 2,000 wallet limit (offline capable)",
			"6. No charges on UPI transactions for individuals",
			"7. Works 24/7 including weekends and holidays",
		},
		Tips: []string{"Daily and monthly limits may vary by bank", "UPI Lite works without internet for small payments"},
	},
}
