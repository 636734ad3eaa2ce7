package shop

// aboutMarkdown is the about page copy, rendered through glamour.
const aboutMarkdown = `# About Breza

*Where music meets fashion, and creativity knows no bounds.*

## Our Story

Born from the intersection of music and street culture, Breza emerged as
a vision to create apparel that speaks the language of self-expression.
Every acid-washed tee and premium hoodie carries the energy of the
underground scenes that inspired it.

## What We Stand For

- **Craft**: 100% cotton, 240 GSM fabric, finishes that survive the pit.
- **Community**: designed with the artists and crowds who wear it.
- **Creativity**: limited drops, collabs, and one-off prints.

## The Collection

Acid Washed Oversized Tees, Oversized T-Shirts, Regular Fit T-Shirts and
Premium Hoodies: unisex fits with relaxed shoulders for a streetwear
look.
`
