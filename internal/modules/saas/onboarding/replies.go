package onboarding

import "fmt"

const (
	ReplyWelcome = "Welcome to ApexChat AI! I'm here to help you automate sales and manage your business. " +
		"To start, please tell me your business name."

	ReplyProductOptions = "You can either:\n\n1. Upload a spreadsheet with your products\n2. Add products one by one\n\nWhich would you prefer?"

	ReplyUploadInstructions = "Perfect! Please send me a CSV file with your products. " +
		"Make sure it has columns like: sku, product_name, description, price, stock_quantity, category"

	ReplyManualInstructions = "Great! Let's add products one by one. Please send me the product details in this format:\n\n" +
		"Product: [Name]\nPrice: [Amount]\nQuantity: [Number]\nDescription: [Details]"

	ReplyChoiceNotUnderstood = "I didn't quite understand. Please choose:\n\n" +
		"1. Upload a spreadsheet with your products\n2. Add products one by one"

	ReplyCSVReceived = "Got it! I've processed your CSV file and added the products to your inventory. " +
		"You can add more or make changes any time."

	ReplyAwaitingFile = "I'm waiting for your product file. Please send a CSV file with your products, " +
		"or type 'manual' to add them one by one."

	ReplyFallback = "I'm not sure how to handle that right now. Please try sending 'Hello' to start over."

	// ReplyApology is sent when processing fails and every change was rolled back.
	ReplyApology = "Apologies, I'm experiencing technical difficulties. Please try again later."
)

// NameConfirmed confirms a freshly provisioned business.
func NameConfirmed(name string) string {
	return fmt.Sprintf("Great! '%s' is all set up. Now, let's add your products so I can answer customer "+
		"questions and track sales. %s", name, ReplyProductOptions)
}

// AlreadyRegistered is used instead of NameConfirmed when the phone already
// owns a business.
func AlreadyRegistered(name string) string {
	return fmt.Sprintf("Welcome back! '%s' is already registered to this number. "+
		"Let's add your products. %s", name, ReplyProductOptions)
}
