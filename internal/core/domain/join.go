package domain

// Join record fields.
const (
	FieldCampName           = "campName"
	FieldParticipantCount   = "participantCount"
	FieldPaymentStatus      = "paymentStatus"
	FieldFeedbackStatus     = "feedbackStatus"
	FieldConfirmationStatus = "confirmationStatus"
	FieldTransactionID      = "transactionId"
	FieldCampFees           = "campFees"
)

// JoinPatchFields lists the fields a join-record patch may set, in the
// order they are applied.
var JoinPatchFields = []string{
	FieldPaymentStatus,
	FieldConfirmationStatus,
	FieldTransactionID,
	FieldCampName,
	FieldCampFees,
}

// JoinPatch builds the $set document for a join-record patch. Only the
// fields in JoinPatchFields are considered, and each one is kept only when
// its value is truthy: a campFees of 0 or an empty transactionId is
// silently dropped.
func JoinPatch(body Document) Document {
	set := Document{}
	for _, f := range JoinPatchFields {
		if v, ok := body[f]; ok && Truthy(v) {
			set[f] = v
		}
	}
	return set
}
