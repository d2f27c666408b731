package templates

import (
	"bytes"
	"fmt"
	htmltpl "html/template"
	texttpl "text/template"
)

const orderConfirmationSubject = "Your Matrika Bazaar order is confirmed"

const orderConfirmationText = `Hi {{.Name}},

Thanks for your order!

Order ID: {{.OrderID}}
Items: {{.ItemCount}}
Total: {{.TotalAmount}}
Shipping to: {{.Address}}

Your order status is Pending. We will let you know when it ships.

— Matrika Bazaar`

const orderConfirmationHTML = `<!DOCTYPE html>
<html>
  <body style="font-family: Arial, sans-serif; color: #333;">
    <h2>Thanks for your order, {{.Name}}!</h2>
    <p>Your order <strong>{{.OrderID}}</strong> was placed successfully.</p>
    <table cellpadding="6" style="border-collapse: collapse;">
      <tr><td>Items</td><td><strong>{{.ItemCount}}</strong></td></tr>
      <tr><td>Total</td><td><strong>{{.TotalAmount}}</strong></td></tr>
      <tr><td>Shipping address</td><td>{{.Address}}</td></tr>
      <tr><td>Status</td><td>Pending</td></tr>
    </table>
    <p style="color: #888; font-size: 12px;">Matrika Bazaar</p>
  </body>
</html>`

var (
	orderConfirmationTextTpl = texttpl.Must(texttpl.New("order_confirmation_text").Parse(orderConfirmationText))
	orderConfirmationHTMLTpl = htmltpl.Must(htmltpl.New("order_confirmation_html").Parse(orderConfirmationHTML))
)

// Render renders the named template with data and returns subject, text
// and HTML bodies.
func Render(name string, data map[string]any) (subject, text, html string, err error) {
	switch name {
	case "order_confirmation":
		var tb, hb bytes.Buffer
		if err = orderConfirmationTextTpl.Execute(&tb, data); err != nil {
			return "", "", "", err
		}
		if err = orderConfirmationHTMLTpl.Execute(&hb, data); err != nil {
			return "", "", "", err
		}
		return orderConfirmationSubject, tb.String(), hb.String(), nil
	default:
		return "", "", "", fmt.Errorf("unknown template %q", name)
	}
}
