package commerce

// GraphQL documents for the storefront API. Every cart operation selects
// the same cart fields so mutations always return the full replacement
// representation.

const cartFieldsFragment = `
fragment cartFields on Cart {
  id
  totalQuantity
  cost {
    totalAmount { amount currencyCode }
    subtotalAmount { amount currencyCode }
    totalTaxAmount { amount currencyCode }
  }
  lines(first: 100) {
    nodes {
      id
      quantity
      merchandise {
        ... on ProductVariant {
          id
          title
          price { amount currencyCode }
          selectedOptions { name value }
          image { id url altText }
          product {
            id
            title
            handle
            images(first: 1) { nodes { id url altText } }
          }
        }
      }
    }
  }
  checkoutUrl
}
`

const cartQuery = `
query getCart($id: ID!) {
  cart(id: $id) { ...cartFields }
}
` + cartFieldsFragment

const cartCreateMutation = `
mutation cartCreate($input: CartInput!) {
  cartCreate(input: $input) {
    cart { ...cartFields }
    userErrors { field message }
  }
}
` + cartFieldsFragment

const cartLinesAddMutation = `
mutation cartLinesAdd($cartId: ID!, $lines: [CartLineInput!]!) {
  cartLinesAdd(cartId: $cartId, lines: $lines) {
    cart { ...cartFields }
    userErrors { field message }
  }
}
` + cartFieldsFragment

const cartLinesUpdateMutation = `
mutation cartLinesUpdate($cartId: ID!, $lines: [CartLineUpdateInput!]!) {
  cartLinesUpdate(cartId: $cartId, lines: $lines) {
    cart { ...cartFields }
    userErrors { field message }
  }
}
` + cartFieldsFragment

const cartLinesRemoveMutation = `
mutation cartLinesRemove($cartId: ID!, $lineIds: [ID!]!) {
  cartLinesRemove(cartId: $cartId, lineIds: $lineIds) {
    cart { ...cartFields }
    userErrors { field message }
  }
}
` + cartFieldsFragment

const productFieldsFragment = `
fragment productFields on Product {
  id
  title
  handle
  description
  tags
  availableForSale
  priceRange {
    minVariantPrice { amount currencyCode }
    maxVariantPrice { amount currencyCode }
  }
  compareAtPriceRange {
    minVariantPrice { amount currencyCode }
    maxVariantPrice { amount currencyCode }
  }
  images(first: 10) { nodes { id url altText } }
  variants(first: 100) {
    nodes {
      id
      title
      availableForSale
      price { amount currencyCode }
      compareAtPrice { amount currencyCode }
      selectedOptions { name value }
    }
  }
  options { id name values }
}
`

const productsQuery = `
query getProducts($first: Int!, $after: String) {
  products(first: $first, after: $after) {
    pageInfo { hasNextPage endCursor }
    nodes { ...productFields }
  }
}
` + productFieldsFragment

const productQuery = `
query getProduct($handle: String!) {
  product(handle: $handle) { ...productFields }
}
` + productFieldsFragment
