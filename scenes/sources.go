package scenes

// ─────────────────────────────── Positions only ────────────────────────────────

const positionVertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const orangeFragmentSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(1.0, 0.5, 0.2, 1.0);
}
`

const tealFragmentSource = `#version 330 core
out vec4 FragColor;
void main()
{
    FragColor = vec4(0.3, 1.0, 0.8, 1.0);
}
`

// ─────────────────────────────── Colour attribute ──────────────────────────────

const colorVertexSource = `#version 330 core
layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aCol;
out vec3 vCol;
void main()
{
    vCol = aCol;
    gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const colorFragmentSource = `#version 330 core
in vec3 vCol;
out vec4 FragColor;
void main()
{
    FragColor = vec4(vCol, 1.0);
}
`

// ─────────────────────────────── Uniform colour ────────────────────────────────

const uniformFragmentSource = `#version 330 core
out vec4 FragColor;
uniform vec4 uColor;
void main()
{
    FragColor = uColor;
}
`

// ─────────────────────────────── Clear colours ─────────────────────────────────

var (
	white = [4]float32{1.0, 1.0, 1.0, 1.0}
	teal  = [4]float32{0.1, 0.4, 0.5, 1.0}
)
