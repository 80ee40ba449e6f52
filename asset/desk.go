package asset

// DefaultDeskConfig is the desk used when no config file is found
const DefaultDeskConfig = `
seed = 0
cell_aspect = 2.0
audio = false
background = "#1e1e28"

[log]
file = ""
level = "info"

# Surface units: one column horizontally, 1/cell_aspect of a row vertically

[[paper]]
title = "Groceries"
x = 4
y = 4
width = 26
height = 14
color = "#f3e5ab"
lines = ["milk", "eggs", "coffee (lots)"]

[[paper]]
title = "Call back"
x = 34
y = 8
width = 24
height = 12
color = "#b5e3d8"
lines = ["plumber, before 5pm"]

[[paper]]
title = "Left drag: move"
x = 14
y = 24
width = 30
height = 12
color = "#f7c6c7"
lines = ["right drag: rotate", "q / ctrl+c: quit"]
`

// DemoScript is a replay exercising both mouse and touch paths
const DemoScript = `
[[event]]
kind = "activate"
source = "mouse"
button = "left"
x = 10
y = 10

[[event]]
kind = "move"
source = "mouse"
x = 20
y = 14

[[event]]
kind = "release"
source = "mouse"

[[event]]
kind = "activate"
source = "touch"
paper = "Call back"
contacts = 2
x = 46
y = 14

[[event]]
kind = "move"
source = "touch"
contacts = 2
x = 46
y = 0

[[event]]
kind = "release"
source = "touch"
`
