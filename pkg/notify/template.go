package notify

import (
	"bytes"
	"fmt"
	"html/template"

	"pricetracker/pkg/domain"

	"github.com/shopspring/decimal"
)

var priceDropTemplate = template.Must(template.New("priceDrop").Parse(`<html>
<head>
    <meta charset="UTF-8">
    <title>Price Change Alert</title>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #ffffff; padding: 20px; border-radius: 10px; box-shadow: 0 0 10px rgba(0, 0, 0, 0.1); }
        .header { text-align: center; color: #333; }
        .price { color: #d9534f; font-weight: bold; }
        .button { display: inline-block; padding: 10px 20px; margin-top: 20px; color: #fff; background-color: #5cb85c; text-decoration: none; border-radius: 5px; }
    </style>
</head>
<body>
    <div class="container">
        <h2 class="header">Price Change Alert!</h2>
        <p>The price of <strong>{{.Name}}</strong> has changed.</p>
        <p>Old Price: <span class="price">${{.OldPrice}}</span></p>
        <p>New Price: <span class="price">${{.NewPrice}}</span></p>
        <p>That's a difference of <strong>${{.Difference}}</strong>!</p>
        <a href="{{.URL}}" class="button">View Product</a>
    </div>
</body>
</html>
`))

var productAddedTemplate = template.Must(template.New("productAdded").Parse(`<html>
<head>
    <meta charset="UTF-8">
    <title>New Product Tracked</title>
    <style>
        body { font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #ffffff; padding: 20px; border-radius: 10px; box-shadow: 0 0 10px rgba(0, 0, 0, 0.1); text-align: center; }
        .header { color: #333; }
        .message { font-size: 16px; color: #555; }
        .button { display: inline-block; padding: 10px 20px; margin-top: 20px; color: #fff; background-color: #007bff; text-decoration: none; border-radius: 5px; }
        .product-info { margin-top: 15px; font-size: 16px; color: #444; }
    </style>
</head>
<body>
    <div class="container">
        <h2 class="header">New Product Added for Tracking</h2>
        <p class="message">A new product has been successfully added to your tracking list.</p>
        <p class="product-info"><strong>Product Name:</strong> {{.Name}}</p>
        <p class="product-info"><strong>Current Price:</strong> ${{.Price}}</p>
        <p class="message">You will receive alerts when its price changes.</p>
        <a href="{{.URL}}" class="button">View Product</a>
    </div>
</body>
</html>
`))

func renderPriceDrop(product domain.Product, newPrice decimal.Decimal) (string, error) {
	var buf bytes.Buffer
	err := priceDropTemplate.Execute(&buf, struct {
		Name       string
		URL        string
		OldPrice   string
		NewPrice   string
		Difference string
	}{
		Name:       product.Name,
		URL:        product.URL,
		OldPrice:   product.CurrentPrice.StringFixed(2),
		NewPrice:   newPrice.StringFixed(2),
		Difference: product.CurrentPrice.Sub(newPrice).StringFixed(2),
	})
	if err != nil {
		return "", fmt.Errorf("could not render price drop email: %w", err)
	}

	return buf.String(), nil
}

func renderProductAdded(product domain.Product) (string, error) {
	var buf bytes.Buffer
	err := productAddedTemplate.Execute(&buf, struct {
		Name  string
		URL   string
		Price string
	}{
		Name:  product.Name,
		URL:   product.URL,
		Price: product.CurrentPrice.StringFixed(2),
	})
	if err != nil {
		return "", fmt.Errorf("could not render product added email: %w", err)
	}

	return buf.String(), nil
}
