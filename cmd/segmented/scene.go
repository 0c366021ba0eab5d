package main

// builtinScene is the showcase scene the demo falls back to when no
// scene file is given.
const builtinScene = `
version: "1.0"
name: showcase
description: built-in demo scene
groups:
  - label: View mode
    role: radiogroup
    size: medium
    width: fill
    segments:
      - label: Day
        selected: true
      - label: Week
      - label: Month
      - label: Year
        disabled: true
  - label: Formatting
    role: toolbar
    size: small
    segments:
      - glyph: "𝐁"
        name: Bold
      - glyph: "𝐼"
        name: Italic
      - glyph: "U̲"
        name: Underline
  - label: Zoom
    role: group
    segments:
      - label: "50%"
      - label: "100%"
        selected: true
        size: large
      - label: "200%"
`
