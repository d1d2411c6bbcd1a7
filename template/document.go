package template

// mortgageLetter: fixed hardship letter skeleton. Everything in brackets
// is for the end user to fill in before sending.
var mortgageLetter = DocumentRecipe{
	ID: "mortgage-letter",
	SenderLines: []string{
		"Your Name",
		"Your Address",
		"City, State ZIP",
		"Phone: (XXX) XXX-XXXX",
		"Email: your.email@example.com",
	},
	RecipientLines: []string{
		"[Lender Name]",
		"[Lender Address]",
		"[City, State ZIP]",
	},
	Subject:    "Re: Mortgage Hardship Request - [Loan Number]",
	Salutation: "Dear [Lender Name],",
	Body: []string{
		"I am writing to request assistance regarding my mortgage loan. Due to unforeseen financial circumstances, " +
			"I am experiencing difficulty meeting my monthly mortgage payment obligations. " +
			"I value my home and have always prioritized making my mortgage payments on time. " +
			"However, I am currently facing a temporary financial hardship due to [your specific hardship reason].",
		"This situation has significantly impacted my income and my ability to meet my financial obligations. " +
			"I am requesting consideration for a [forbearance plan/loan modification/other specific request] " +
			"that would allow me to maintain my home while I work through these temporary financial challenges.",
		"I have taken the following steps to address my financial situation:\n" +
			"- [Action taken - e.g., reduced unnecessary expenses]\n" +
			"- [Action taken - e.g., sought additional income]\n" +
			"- [Action taken - e.g., consulted financial counselor]",
		"I am committed to fulfilling my mortgage obligation and maintaining my home. " +
			"I believe that with temporary assistance, I will be able to resume regular payments by [estimated date].",
		"Thank you for considering my request. I am open to discussing any solutions that would help me keep my home " +
			"while resolving this temporary hardship. Please contact me at [phone] or [email] if you need additional information.",
		"Sincerely,\n\n\n[Your Name]",
	},
}

// Generic document boilerplate used by the fallback recipe.
const GenericDocumentBody = "This is a template document generated by MoneyGate. " +
	"You can customize this content with your specific information. " +
	"Add your details and personalize this document to suit your needs.\n\n" +
	"For more templates and financial tools, visit www.moneygate.com"

// Footer content shared by every document template.
const (
	BrandingLine       = "Generated by MoneyGate | www.moneygate.com"
	ResourcesHeading   = "Additional Resources:"
	ResourceMoneyGate  = "- Visit www.moneygate.com for more financial tools"
	ResourceCFPB       = "- Consumer Financial Protection Bureau: www.consumerfinance.gov"
)
