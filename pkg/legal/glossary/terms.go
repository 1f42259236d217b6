package glossary

import "law-agent-be/pkg/legal"

// legalTerms is the built-in glossary. Order matters: the extractor
// breaks relevance ties by position in this slice.
var legalTerms = []Term{
	{
		Term:              "custody",
		Definition:        "Legal responsibility for the care and control of a child, including physical custody (where the child lives) and legal custody (decision-making authority).",
		Domain:            legal.DomainFamilyLaw,
		Complexity:        "basic",
		Synonyms:          []string{"child custody", "parental custody"},
		RelatedTerms:      []string{"visitation", "parental rights"},
		CommonUsage:       "Who gets to keep the children and make decisions about their lives.",
		ProfessionalUsage: "Legal and physical custody arrangements as determined by court order or agreement.",
	},
	{
		Term:              "alimony",
		Definition:        "Financial support paid by one spouse to another after separation or divorce, also known as spousal support or maintenance.",
		Domain:            legal.DomainFamilyLaw,
		Complexity:        "basic",
		Synonyms:          []string{"spousal support", "maintenance"},
		RelatedTerms:      []string{"divorce", "child support"},
		CommonUsage:       "Money one ex-spouse pays to the other after divorce.",
		ProfessionalUsage: "Court-ordered financial support based on marriage duration, earning capacity, and standard of living.",
	},
	{
		Term:              "divorce",
		Definition:        "The legal dissolution of a marriage by a court, resolving property division, support, and custody between the spouses.",
		Domain:            legal.DomainFamilyLaw,
		Complexity:        "basic",
		Synonyms:          []string{"dissolution of marriage"},
		RelatedTerms:      []string{"alimony", "custody", "separation"},
		CommonUsage:       "Legally ending a marriage.",
		ProfessionalUsage: "Judicial dissolution of the marital estate including equitable distribution and support determinations.",
	},
	{
		Term:              "best interest of the child",
		Definition:        "Legal standard used by courts to determine custody and visitation arrangements, focusing on the child's physical, emotional, and developmental needs.",
		Domain:            legal.DomainFamilyLaw,
		Complexity:        "intermediate",
		Synonyms:          []string{"best interest standard"},
		RelatedTerms:      []string{"custody", "parenting plan"},
		CommonUsage:       "What's best for the child in custody decisions.",
		ProfessionalUsage: "Multi-factor legal test examining the child's physical, emotional, educational, and social needs.",
	},
	{
		Term:              "arraignment",
		Definition:        "Initial court appearance where the defendant is formally charged and enters a plea of guilty, not guilty, or no contest.",
		Domain:            legal.DomainCriminalLaw,
		Complexity:        "basic",
		Synonyms:          []string{"initial appearance", "first appearance"},
		RelatedTerms:      []string{"plea", "bail"},
		CommonUsage:       "First court appearance where you're told what you're charged with.",
		ProfessionalUsage: "Formal reading of charges and entry of plea, with determination of bail and future court dates.",
	},
	{
		Term:              "probable cause",
		Definition:        "Reasonable belief that a crime has been committed and that a specific person committed it, required for arrests and search warrants.",
		Domain:            legal.DomainCriminalLaw,
		Complexity:        "intermediate",
		Synonyms:          []string{"reasonable belief"},
		RelatedTerms:      []string{"search warrant", "arrest"},
		CommonUsage:       "Good reason to believe someone committed a crime.",
		ProfessionalUsage: "Constitutional standard requiring more than mere suspicion but less than proof beyond reasonable doubt.",
	},
	{
		Term:              "plea bargain",
		Definition:        "Agreement between prosecutor and defendant where the defendant pleads guilty to a lesser charge or receives a reduced sentence in exchange for avoiding trial.",
		Domain:            legal.DomainCriminalLaw,
		Complexity:        "basic",
		Synonyms:          []string{"plea agreement", "plea deal"},
		RelatedTerms:      []string{"sentencing", "trial"},
		CommonUsage:       "Deal where you plead guilty to a lesser charge to avoid worse punishment.",
		ProfessionalUsage: "Negotiated resolution involving a guilty plea in exchange for prosecutorial concessions.",
	},
	{
		Term:              "LLC",
		Definition:        "Limited Liability Company - a business structure that combines elements of corporations and partnerships, providing limited liability with a flexible management structure.",
		Domain:            legal.DomainCorporateLaw,
		Complexity:        "basic",
		Synonyms:          []string{"limited liability company"},
		RelatedTerms:      []string{"corporation", "partnership"},
		CommonUsage:       "Business structure that protects your personal assets from business problems.",
		ProfessionalUsage: "Hybrid entity providing corporate liability protection with partnership tax treatment.",
	},
	{
		Term:              "fiduciary duty",
		Definition:        "Legal obligation to act in the best interest of another party, requiring loyalty, care, and good faith in business relationships.",
		Domain:            legal.DomainCorporateLaw,
		Complexity:        "advanced",
		Synonyms:          []string{"duty of loyalty"},
		RelatedTerms:      []string{"board of directors", "corporate governance"},
		CommonUsage:       "Legal duty to put someone else's interests first.",
		ProfessionalUsage: "Highest standard of care requiring undivided loyalty and reasonable care in decision-making.",
	},
	{
		Term:              "deed",
		Definition:        "Legal document that transfers ownership of real property from one party to another, containing a description of the property and signatures of the parties.",
		Domain:            legal.DomainPropertyLaw,
		Complexity:        "basic",
		Synonyms:          []string{"property deed", "title deed"},
		RelatedTerms:      []string{"title", "real estate"},
		CommonUsage:       "Document that proves you own property.",
		ProfessionalUsage: "Formal instrument of conveyance transferring legal title with specific warranties and covenants.",
	},
	{
		Term:              "easement",
		Definition:        "Legal right to use another person's property for a specific purpose, such as access or utilities, without owning the property.",
		Domain:            legal.DomainPropertyLaw,
		Complexity:        "intermediate",
		Synonyms:          []string{"right of way"},
		RelatedTerms:      []string{"property rights", "covenant"},
		CommonUsage:       "Right to use someone else's property for a specific purpose.",
		ProfessionalUsage: "Non-possessory interest in land granting specific use rights while ownership remains with another party.",
	},
	{
		Term:              "eviction",
		Definition:        "The court-ordered removal of a tenant from rented property, usually for non-payment of rent or violation of the lease.",
		Domain:            legal.DomainPropertyLaw,
		Complexity:        "basic",
		Synonyms:          []string{"unlawful detainer"},
		RelatedTerms:      []string{"lease", "landlord", "tenant"},
		CommonUsage:       "Being legally forced out of a rental.",
		ProfessionalUsage: "Summary possession proceeding terminating the tenancy and restoring possession to the landlord.",
	},
	{
		Term:              "at-will employment",
		Definition:        "Employment relationship where either employer or employee can terminate the relationship at any time, for any lawful reason, without advance notice.",
		Domain:            legal.DomainEmploymentLaw,
		Complexity:        "basic",
		Synonyms:          []string{"employment at will"},
		RelatedTerms:      []string{"wrongful termination", "employment contract"},
		CommonUsage:       "Your employer can fire you without cause, and you can quit the same way.",
		ProfessionalUsage: "Default employment doctrine permitting termination absent a contractual or statutory restriction.",
	},
	{
		Term:              "wrongful termination",
		Definition:        "Firing an employee for an illegal reason, such as discrimination, retaliation, or refusal to commit an unlawful act.",
		Domain:            legal.DomainEmploymentLaw,
		Complexity:        "intermediate",
		Synonyms:          []string{"wrongful dismissal", "wrongful discharge"},
		RelatedTerms:      []string{"discrimination", "retaliation"},
		CommonUsage:       "Getting fired for a reason the law does not allow.",
		ProfessionalUsage: "Termination in violation of statutory protections, public policy, or contractual obligations.",
	},
	{
		Term:              "breach of contract",
		Definition:        "Failure to perform any material term of a contract without a legitimate legal excuse, giving the other party a right to remedies.",
		Domain:            legal.DomainContractLaw,
		Complexity:        "basic",
		Synonyms:          []string{"contract breach"},
		RelatedTerms:      []string{"damages", "remedy"},
		CommonUsage:       "Not holding up your end of a deal.",
		ProfessionalUsage: "Material non-performance of contractual obligations entitling the non-breaching party to damages or specific performance.",
	},
	{
		Term:              "negligence",
		Definition:        "Failure to exercise the care a reasonable person would in similar circumstances, causing harm to another person.",
		Domain:            legal.DomainTortLaw,
		Complexity:        "basic",
		Synonyms:          []string{"carelessness"},
		RelatedTerms:      []string{"duty of care", "damages"},
		CommonUsage:       "Causing harm by being careless.",
		ProfessionalUsage: "Breach of a duty of reasonable care proximately causing compensable injury.",
	},
	{
		Term:              "automatic stay",
		Definition:        "An injunction that halts most collection actions against a debtor the moment a bankruptcy petition is filed.",
		Domain:            legal.DomainBankruptcyLaw,
		Complexity:        "intermediate",
		RelatedTerms:      []string{"bankruptcy", "creditor"},
		CommonUsage:       "Filing bankruptcy stops collectors immediately.",
		ProfessionalUsage: "Statutory injunction under 11 U.S.C. § 362 staying collection, enforcement, and lien actions.",
	},
}
