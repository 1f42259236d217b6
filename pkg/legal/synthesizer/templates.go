package synthesizer

import "law-agent-be/pkg/legal"

// Template is the per-domain structural skeleton. Analysis and
// ApplicableLaw are required sections; NextSteps, Timeline,
// EstimatedCost and SuccessRate are optional and are the first to go
// when the rendered text exceeds its budget. Numeric fields are only
// surfaced when the template defines them.
type Template struct {
	Domain        legal.Domain
	Analysis      string
	ApplicableLaw string
	NextSteps     []string
	Timeline      string
	EstimatedCost string
	SuccessRate   float64
}

// genericTemplate backs unknown-domain queries and every failure path.
var genericTemplate = Template{
	Domain:        legal.DomainUnknown,
	Analysis:      "Your question touches on legal matters that need more detail to route precisely. Legal outcomes depend heavily on the specific facts, documents, and jurisdiction involved.",
	ApplicableLaw: "The governing law depends on the subject matter and the state or country where the issue arises.",
	NextSteps: []string{
		"Describe the issue with specific facts, dates, and parties",
		"Gather any documents or written communication involved",
		"Identify the state or jurisdiction where the issue arose",
		"Consult a licensed attorney for advice on your situation",
	},
	Timeline: "Varies by specific matter",
}

var domainTemplates = map[legal.Domain]Template{
	legal.DomainFamilyLaw: {
		Domain:        legal.DomainFamilyLaw,
		Analysis:      "Family law matters involve personal relationships and require consideration of state-specific laws and procedures. Outcomes turn on residency requirements, the interests of any children, and the parties' willingness to cooperate.",
		ApplicableLaw: "State family codes govern divorce, custody, and support; courts apply the best-interest-of-the-child standard to parenting decisions.",
		NextSteps: []string{
			"Identify the specific family law issue (divorce, custody, support)",
			"Gather marriage, financial, and parenting documents",
			"Check your state's residency and filing requirements",
			"Consider mediation or collaborative approaches",
			"Consult a family law attorney",
		},
		Timeline:      "3-12 months depending on complexity",
		EstimatedCost: "Rs.15,000-Rs.150,000",
		SuccessRate:   0.72,
	},
	legal.DomainCriminalLaw: {
		Domain:        legal.DomainCriminalLaw,
		Analysis:      "Criminal matters involve potential loss of liberty and require immediate professional legal representation. Anything you say can be used against you, so constitutional protections should be exercised from the first contact with law enforcement.",
		ApplicableLaw: "The criminal procedure code and constitutional guarantees (right to counsel, protection against self-incrimination) control arrests, bail, and trial.",
		NextSteps: []string{
			"Exercise your right to remain silent and request an attorney",
			"Do not discuss the case with anyone except your lawyer",
			"Gather evidence and witness information for the defense",
			"Understand the charges and potential penalties",
			"Prepare for bail and court proceedings",
		},
		Timeline:      "3-18 months depending on charges",
		EstimatedCost: "Rs.25,000-Rs.300,000",
		SuccessRate:   0.58,
	},
	legal.DomainCorporateLaw: {
		Domain:        legal.DomainCorporateLaw,
		Analysis:      "Corporate matters hinge on entity structure, governance documents, and regulatory compliance. The right structure shields personal assets and defines decision rights among owners.",
		ApplicableLaw: "Company statutes, securities regulation, and the entity's own charter and bylaws govern formation, fiduciary duties, and shareholder rights.",
		NextSteps: []string{
			"Review formation documents, bylaws, and shareholder agreements",
			"Identify governance or compliance obligations at issue",
			"Document board and shareholder decisions",
			"Engage corporate counsel for transactions or disputes",
		},
		Timeline:      "2-6 months",
		EstimatedCost: "Rs.30,000-Rs.500,000",
		SuccessRate:   0.75,
	},
	legal.DomainPropertyLaw: {
		Domain:        legal.DomainPropertyLaw,
		Analysis:      "Property disputes turn on recorded title, written agreements, and local landlord-tenant or zoning rules. Deadlines for notices and challenges are short and strictly enforced.",
		ApplicableLaw: "State property statutes, recording acts, and local housing codes govern ownership transfers, leases, and eviction procedure.",
		NextSteps: []string{
			"Collect deeds, leases, notices, and correspondence",
			"Verify recorded title and any liens or encumbrances",
			"Review notice periods and procedural requirements",
			"Consult a property attorney before deadlines pass",
		},
		Timeline:      "2-8 weeks",
		EstimatedCost: "Rs.10,000-Rs.100,000",
		SuccessRate:   0.68,
	},
	legal.DomainEmploymentLaw: {
		Domain:        legal.DomainEmploymentLaw,
		Analysis:      "Employment law protects workers from discrimination, unsafe conditions, and unfair practices while balancing employer rights. Claims often require exhausting internal and administrative remedies before suit.",
		ApplicableLaw: "Anti-discrimination statutes, wage and hour laws, and workplace safety regulations apply alongside the employment contract and company policy.",
		NextSteps: []string{
			"Review your employment contract and company policies",
			"Document violations or discriminatory conduct with dates",
			"Follow internal complaint procedures where appropriate",
			"Consider filing with the relevant labor agency",
			"Preserve all records; agency deadlines are strict",
		},
		Timeline:      "180 days to 3 years",
		EstimatedCost: "Rs.20,000-Rs.200,000",
		SuccessRate:   0.64,
	},
	legal.DomainImmigrationLaw: {
		Domain:        legal.DomainImmigrationLaw,
		Analysis:      "Immigration outcomes depend on status history, filing categories, and strict documentary requirements. Small errors in applications cause long delays or denials.",
		ApplicableLaw: "Federal immigration statutes and agency regulations control visas, residence, naturalization, and removal proceedings.",
		NextSteps: []string{
			"Determine your current status and eligibility category",
			"Assemble identity, entry, and sponsorship documents",
			"File complete applications before status expiry",
			"Consult an immigration attorney for removal or denial issues",
		},
		Timeline:      "6-24 months",
		EstimatedCost: "Rs.20,000-Rs.250,000",
		SuccessRate:   0.61,
	},
	legal.DomainIntellectualProperty: {
		Domain:        legal.DomainIntellectualProperty,
		Analysis:      "Intellectual property rights depend on registration, first use, and documented creation. Enforcement requires proving ownership and unauthorized use.",
		ApplicableLaw: "Patent, trademark, and copyright statutes provide registration systems and infringement remedies; trade secrets rest on confidentiality measures.",
		NextSteps: []string{
			"Document creation dates and ownership of the work",
			"Search existing registrations for conflicts",
			"Register the patent, trademark, or copyright",
			"Send cease-and-desist or license demands through counsel",
		},
		Timeline:      "6-18 months",
		EstimatedCost: "Rs.25,000-Rs.400,000",
		SuccessRate:   0.66,
	},
	legal.DomainTaxLaw: {
		Domain:        legal.DomainTaxLaw,
		Analysis:      "Tax disputes turn on documentation and statutory deadlines for returns, assessments, and appeals. Voluntary correction before enforcement usually reduces penalties.",
		ApplicableLaw: "The income tax code, assessment procedures, and appellate rules of the revenue authority govern audits, liabilities, and refunds.",
		NextSteps: []string{
			"Gather returns, notices, and supporting records",
			"Verify the assessment or notice against your filings",
			"Respond within the notice deadline",
			"Engage a tax professional for audits or appeals",
		},
		Timeline:      "2-12 months",
		EstimatedCost: "Rs.15,000-Rs.200,000",
		SuccessRate:   0.63,
	},
	legal.DomainConstitutionalLaw: {
		Domain:        legal.DomainConstitutionalLaw,
		Analysis:      "Constitutional claims challenge government action against fundamental rights and require showing state action and concrete injury. These cases are procedurally demanding and precedent-driven.",
		ApplicableLaw: "Constitutional guarantees of due process, equal protection, and enumerated freedoms, as interpreted by the supreme court, control.",
		NextSteps: []string{
			"Identify the specific right and government action involved",
			"Document the injury and its connection to the action",
			"Research controlling precedent in your jurisdiction",
			"Engage counsel experienced in constitutional litigation",
		},
		Timeline:      "1-4 years",
		EstimatedCost: "Rs.50,000-Rs.1,000,000",
		SuccessRate:   0.42,
	},
	legal.DomainContractLaw: {
		Domain:        legal.DomainContractLaw,
		Analysis:      "Contract disputes turn on the written terms, performance history, and whether a breach is material. Remedies aim to put the non-breaching party where performance would have.",
		ApplicableLaw: "General contract law and any statute governing the subject matter (sale of goods, consumer protection) apply alongside the agreement's own clauses.",
		NextSteps: []string{
			"Collect the contract, amendments, and all correspondence",
			"Identify the specific terms allegedly breached",
			"Quantify damages and mitigation efforts",
			"Attempt negotiated resolution before filing suit",
		},
		Timeline:      "2 months to 2 years",
		EstimatedCost: "Rs.15,000-Rs.250,000",
		SuccessRate:   0.69,
	},
	legal.DomainTortLaw: {
		Domain:        legal.DomainTortLaw,
		Analysis:      "Personal injury claims require proving duty, breach, causation, and damages. Evidence preserved early (photos, medical records, witnesses) largely determines outcomes.",
		ApplicableLaw: "Negligence doctrine and any applicable liability statute govern; limitation periods start at the injury or its discovery.",
		NextSteps: []string{
			"Seek medical attention and keep all records",
			"Photograph the scene and collect witness contacts",
			"Report the incident to the responsible party or insurer",
			"Consult a personal injury attorney before the limitation period runs",
		},
		Timeline:      "6-24 months",
		EstimatedCost: "Rs.10,000-Rs.300,000",
		SuccessRate:   0.67,
	},
	legal.DomainBankruptcyLaw: {
		Domain:        legal.DomainBankruptcyLaw,
		Analysis:      "Bankruptcy offers court-supervised debt relief; the right chapter depends on income, asset mix, and whether the goal is liquidation or reorganization. Filing triggers an automatic stay against collection.",
		ApplicableLaw: "The bankruptcy code's chapter provisions (liquidation and reorganization) and exemption statutes govern eligibility and discharge.",
		NextSteps: []string{
			"Inventory debts, assets, income, and recent transfers",
			"Complete any required credit counseling",
			"Choose the appropriate chapter with counsel",
			"File the petition and schedules accurately",
		},
		Timeline:      "3-6 months for liquidation; 3-5 years for reorganization",
		EstimatedCost: "Rs.20,000-Rs.150,000",
		SuccessRate:   0.81,
	},
	legal.DomainEnvironmentalLaw: {
		Domain:        legal.DomainEnvironmentalLaw,
		Analysis:      "Environmental matters involve regulatory permits, impact assessments, and agency enforcement. Both compliance duties and citizen remedies flow from statute.",
		ApplicableLaw: "Environmental protection statutes, permit conditions, and agency regulations govern emissions, waste handling, and impact review.",
		NextSteps: []string{
			"Identify the permit, discharge, or impact at issue",
			"Collect sampling data, notices, and permit documents",
			"Respond to agency notices within stated deadlines",
			"Engage environmental counsel for enforcement actions",
		},
		Timeline:      "6-24 months",
		EstimatedCost: "Rs.40,000-Rs.800,000",
		SuccessRate:   0.55,
	},
	legal.DomainHealthcareLaw: {
		Domain:        legal.DomainHealthcareLaw,
		Analysis:      "Healthcare disputes involve patient rights, records privacy, and provider or insurer obligations. Regulatory complaints and civil claims follow different tracks with different deadlines.",
		ApplicableLaw: "Health privacy statutes, medical licensing regulations, and insurance law govern records access, consent, and coverage disputes.",
		NextSteps: []string{
			"Request complete medical records in writing",
			"Document the treatment, denial, or disclosure at issue",
			"File complaints with the relevant health authority",
			"Consult a healthcare attorney for malpractice or coverage claims",
		},
		Timeline:      "3-18 months",
		EstimatedCost: "Rs.20,000-Rs.350,000",
		SuccessRate:   0.59,
	},
}
